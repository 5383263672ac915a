// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env: got %q, want development", cfg.Env)
	}
	if cfg.SiteName != "পত্রিকা" {
		t.Errorf("SiteName: got %q", cfg.SiteName)
	}
	if cfg.SanityDataset != "production" {
		t.Errorf("SanityDataset: got %q", cfg.SanityDataset)
	}
	if cfg.WordsPerMinute != 200 || cfg.HomeFetchLimit != 12 || cfg.PageSize != 9 {
		t.Errorf("tunables: got %d/%d/%d, want 200/12/9",
			cfg.WordsPerMinute, cfg.HomeFetchLimit, cfg.PageSize)
	}
	if cfg.PageCacheTTL != 30*time.Second {
		t.Errorf("PageCacheTTL: got %v", cfg.PageCacheTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("SITE_NAME", "আমার ব্লগ")
	t.Setenv("PAGE_SIZE", "6")
	t.Setenv("PAGE_CACHE_TTL", "2m")
	t.Setenv("SANITY_USE_CDN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.SiteName != "আমার ব্লগ" || cfg.PageSize != 6 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.PageCacheTTL != 2*time.Minute {
		t.Errorf("PageCacheTTL: got %v, want 2m", cfg.PageCacheTTL)
	}
	if !cfg.SanityUseCDN {
		t.Error("SanityUseCDN not applied")
	}
}

func TestLoad_ProductionRequiresProject(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SANITY_PROJECT_ID", "")
	t.Setenv("SANITY_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without SANITY_PROJECT_ID in production")
	}
}

func TestLoad_ProductionBaseURLOverride(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SANITY_PROJECT_ID", "")
	t.Setenv("SANITY_BASE_URL", "http://store.internal:3333")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SanityBaseURL != "http://store.internal:3333" {
		t.Errorf("SanityBaseURL: got %q", cfg.SanityBaseURL)
	}
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "lots")
	t.Setenv("PAGE_CACHE_TTL", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != 9 {
		t.Errorf("PageSize: got %d, want fallback 9", cfg.PageSize)
	}
	if cfg.PageCacheTTL != 30*time.Second {
		t.Errorf("PageCacheTTL: got %v, want fallback 30s", cfg.PageCacheTTL)
	}
}

func TestAddr(t *testing.T) {
	c := &Config{Host: "127.0.0.1", Port: "8081"}
	if got := c.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr: got %q", got)
	}
}

func TestCacheEnabled(t *testing.T) {
	if (&Config{}).CacheEnabled() {
		t.Error("cache enabled without a Redis host")
	}
	if !(&Config{RedisHost: "localhost"}).CacheEnabled() {
		t.Error("cache disabled despite a Redis host")
	}
}
