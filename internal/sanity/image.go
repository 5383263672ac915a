// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// image.go builds CDN URLs for image asset references. An asset ref
// like "image-abc123-800x600-jpg" maps to
// https://cdn.sanity.io/images/{project}/{dataset}/abc123-800x600.jpg
// plus optional transformation hints (width, height, fit, auto format).
package sanity

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageOptions carries the transformation hints appended to an image
// URL. Zero values are omitted from the query string.
type ImageOptions struct {
	Width      int
	Height     int
	Fit        string // e.g. "max", "crop"
	AutoFormat bool   // let the CDN pick the best encoding
}

// ImageURL resolves an asset reference into a CDN URL. It returns the
// empty string — meaning "omit the image" — when the ref is malformed
// or the project configuration is incomplete. It never fails.
func (c *Client) ImageURL(ref string, opts ImageOptions) string {
	if c.config.ProjectID == "" || c.config.Dataset == "" {
		return ""
	}

	id, dims, format, ok := parseImageRef(ref)
	if !ok {
		return ""
	}

	u := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		c.config.ProjectID, c.config.Dataset, id, dims, format)

	values := url.Values{}
	if opts.Width > 0 {
		values.Set("w", fmt.Sprint(opts.Width))
	}
	if opts.Height > 0 {
		values.Set("h", fmt.Sprint(opts.Height))
	}
	if opts.Fit != "" {
		values.Set("fit", opts.Fit)
	}
	if opts.AutoFormat {
		values.Set("auto", "format")
	}
	if len(values) > 0 {
		u += "?" + values.Encode()
	}
	return u
}

// parseImageRef splits an asset reference of the form
// "image-<id>-<width>x<height>-<format>" into its parts.
func parseImageRef(ref string) (id, dims, format string, ok bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", "", "", false
	}
	id, dims, format = parts[1], parts[2], parts[3]
	if id == "" || format == "" {
		return "", "", "", false
	}
	// Dimensions must look like "<digits>x<digits>".
	w, h, found := strings.Cut(dims, "x")
	if !found || !allDigits(w) || !allDigits(h) {
		return "", "", "", false
	}
	return id, dims, format, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
