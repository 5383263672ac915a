// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sanity

import (
	"strings"
	"testing"
)

func imageClient() *Client {
	return NewClient(Config{ProjectID: "myproj", Dataset: "blog"})
}

func TestImageURL_Basic(t *testing.T) {
	got := imageClient().ImageURL("image-abc123-800x600-jpg", ImageOptions{})
	want := "https://cdn.sanity.io/images/myproj/blog/abc123-800x600.jpg"
	if got != want {
		t.Errorf("ImageURL: got %q, want %q", got, want)
	}
}

func TestImageURL_WithHints(t *testing.T) {
	got := imageClient().ImageURL("image-abc123-800x600-jpg", ImageOptions{
		Width:      1200,
		Height:     630,
		Fit:        "max",
		AutoFormat: true,
	})
	for _, part := range []string{"w=1200", "h=630", "fit=max", "auto=format"} {
		if !strings.Contains(got, part) {
			t.Errorf("ImageURL missing %q: got %q", part, got)
		}
	}
	if !strings.HasPrefix(got, "https://cdn.sanity.io/images/myproj/blog/abc123-800x600.jpg?") {
		t.Errorf("ImageURL base: got %q", got)
	}
}

func TestImageURL_InvalidRefIsOmitted(t *testing.T) {
	c := imageClient()
	for _, ref := range []string{
		"",
		"file-abc123-800x600-pdf", // not an image ref
		"image-abc123",            // missing parts
		"image-abc123-nodims-jpg", // bad dimensions
		"image--800x600-jpg",      // empty id
	} {
		if got := c.ImageURL(ref, ImageOptions{}); got != "" {
			t.Errorf("ImageURL(%q): got %q, want empty", ref, got)
		}
	}
}

func TestImageURL_IncompleteConfigIsOmitted(t *testing.T) {
	c := NewClient(Config{Dataset: "blog"}) // no project ID
	if got := c.ImageURL("image-abc123-800x600-jpg", ImageOptions{}); got != "" {
		t.Errorf("ImageURL without project: got %q, want empty", got)
	}
}
