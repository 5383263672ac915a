// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"strings"
	"testing"
)

func TestPageCache_NilIsPermanentMiss(t *testing.T) {
	ctx := context.Background()

	var pc *PageCache
	pc.Set(ctx, "_home", []byte("<html>"))
	if _, ok := pc.Get(ctx, "_home"); ok {
		t.Error("nil cache reported a hit")
	}
}

func TestPageCache_NilClientIsPermanentMiss(t *testing.T) {
	ctx := context.Background()

	pc := NewPageCache(nil, 0)
	pc.Set(ctx, "_home", []byte("<html>"))
	if _, ok := pc.Get(ctx, "_home"); ok {
		t.Error("client-less cache reported a hit")
	}
}

func TestNewPageCache_TTLFallback(t *testing.T) {
	pc := NewPageCache(nil, 0)
	if pc.ttl != DefaultPageTTL {
		t.Errorf("ttl: got %v, want %v", pc.ttl, DefaultPageTTL)
	}
	pc = NewPageCache(nil, -1)
	if pc.ttl != DefaultPageTTL {
		t.Errorf("negative ttl: got %v, want %v", pc.ttl, DefaultPageTTL)
	}
}

func TestPostKey_EscapesSlug(t *testing.T) {
	got := PostKey("আমার-পোস্ট")
	if !strings.HasPrefix(got, "post:") {
		t.Fatalf("PostKey: got %q", got)
	}
	if strings.ContainsAny(got, " \n") {
		t.Errorf("PostKey: unescaped characters in %q", got)
	}
}

func TestCategoryKey_DistinctFromPostKey(t *testing.T) {
	// Same identifier must never collide across page kinds.
	if PostKey("Tech") == CategoryKey("Tech") {
		t.Error("post and category keys collide")
	}
}

func TestPostKey_DistinctPerSlug(t *testing.T) {
	// Escaping must stay injective: "a b" becomes a+b, so a literal plus
	// has to encode differently.
	if PostKey("a b") == PostKey("a+b") {
		t.Error("distinct slugs produced the same key")
	}
}

func TestHomeKey_Stable(t *testing.T) {
	if HomeKey() != "_home" {
		t.Errorf("HomeKey: got %q", HomeKey())
	}
}
