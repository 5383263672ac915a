// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Redis-backed rendered-page HTML cache. When a
// public page is rendered, the resulting HTML is stored so subsequent
// requests within the TTL skip the content-store round trips and
// template execution. The TTL plays the role of the revalidation
// interval: content edits appear once the entry expires.
package cache

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Redis key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 30 * time.Second
)

// PageCache manages rendered-page HTML caching. A nil *PageCache (or
// one built over a nil client) is valid and behaves as a permanent
// miss, so the site runs cache-less when Redis is not configured.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache backed by the given Redis client.
// client may be nil.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a page key. Returns false on miss or
// when caching is disabled.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if pc == nil || pc.client == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML for a page key with the configured TTL.
// Failures are logged and swallowed — caching must never fail a render.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if pc == nil || pc.client == nil {
		return
	}
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// HomeKey returns the cache key for the unfiltered first home page.
func HomeKey() string {
	return "_home"
}

// PostKey returns the cache key for a post detail page.
func PostKey(slug string) string {
	return "post:" + url.QueryEscape(slug)
}

// CategoryKey returns the cache key for a category archive page.
func CategoryKey(title string) string {
	return "category:" + url.QueryEscape(title)
}
