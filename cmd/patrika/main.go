// Package main is the entry point for the Patrika server. It loads
// configuration, connects the content-store client and the optional
// page cache, sets up routing, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patrika/internal/cache"
	"patrika/internal/config"
	"patrika/internal/content"
	"patrika/internal/handlers"
	"patrika/internal/middleware"
	"patrika/internal/readtime"
	"patrika/internal/render"
	"patrika/internal/router"
	"patrika/internal/sanity"
)

func main() {
	// Structured logger to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"dataset", cfg.SanityDataset,
	)

	// Content-store client and typed store. The config handle is
	// resolved once here and injected — no ambient globals.
	client := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		UseCDN:     cfg.SanityUseCDN,
		BaseURL:    cfg.SanityBaseURL,
	})
	store := content.NewStore(client)

	// Rendered-page cache — optional. Without Redis every request
	// renders fresh.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		redisClient, err := cache.Connect(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		pageCache = cache.NewPageCache(redisClient, cfg.PageCacheTTL)
	} else {
		slog.Warn("redis not configured — page caching disabled")
	}

	// Template renderer for the public pages.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	estimator := readtime.New(cfg.WordsPerMinute)

	publicHandlers := handlers.NewPublic(store, client, renderer, pageCache, estimator, handlers.Options{
		SiteName:       cfg.SiteName,
		HomeFetchLimit: cfg.HomeFetchLimit,
		PageSize:       cfg.PageSize,
	})

	// Per-IP rate limiting.
	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute)
		defer limiter.Stop()
	}

	r := router.New(publicHandlers, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
