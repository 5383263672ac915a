// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content defines the projection contract with the headless
// content store — the exact shape of posts, categories, subcategories,
// and authors the pages need — and a typed Store that fetches them.
// All entities are owned by the store; the application holds transient
// read-only copies and never writes back.
package content

import (
	"errors"
	"time"
)

// ErrNotFound reports that a query matched no document. Distinct from
// a *sanity.FetchError: the store answered, there is just no such
// slug or category.
var ErrNotFound = errors.New("content: not found")

// BlockTypeText is the type tag of plain paragraph/heading blocks —
// the only blocks that contribute to word counting.
const BlockTypeText = "block"

// Span is one inline run of text inside a block, with its mark tags
// (e.g. "strong", "em", or a markDefs key for links).
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation definition referenced by span marks,
// such as a link with an href.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// AssetRef points at a stored asset, as embedded in image blocks.
type AssetRef struct {
	Ref string `json:"_ref"`
}

// Block is one node of a rich-text document. The Type tag discriminates
// the variant: "block" carries styled text spans, "image" carries an
// asset reference, and unknown tags are retained so renderers can skip
// them without disturbing document order.
type Block struct {
	Type     string    `json:"_type"`
	Style    string    `json:"style,omitempty"`    // "normal", "h1".."h4", "blockquote"
	ListItem string    `json:"listItem,omitempty"` // "bullet" or "number" when part of a list
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`

	// Image block fields.
	Asset *AssetRef `json:"asset,omitempty"`
	Alt   string    `json:"alt,omitempty"`
}

// SubCategory belongs to exactly one parent category. PostCount is a
// read-time aggregate computed by the store on every fetch.
type SubCategory struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	PostCount int    `json:"postCount"`
}

// CategoryRef is the lightweight category projection attached to a
// post: title plus nested subcategory titles.
type CategoryRef struct {
	Title         string        `json:"title"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
}

// Category is a full category listing entry. Title doubles as the
// lookup key in queries and links — the store carries no separate
// identifier through this flow.
type Category struct {
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	ImageRef      string        `json:"imageRef,omitempty"`
	PostCount     int           `json:"postCount"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
}

// Author may be referenced by zero or more posts. Absence on a post is
// valid; consumers degrade to a placeholder initial.
type Author struct {
	Name     string  `json:"name"`
	ImageRef string  `json:"imageRef,omitempty"`
	Bio      []Block `json:"bio,omitempty"`
}

// Post is the shared projection for list items and detail pages. List
// queries may leave Author nil and Body present only for on-the-fly
// excerpt and reading-time derivation.
type Post struct {
	ID           string        `json:"_id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	PublishedAt  time.Time     `json:"publishedAt"`
	MainImageURL string        `json:"mainImageUrl,omitempty"` // resolved by the store projection
	MainImageRef string        `json:"mainImageRef,omitempty"` // raw ref for sized CDN variants
	Excerpt      string        `json:"excerpt,omitempty"`
	Body         []Block       `json:"body,omitempty"`
	Categories   []CategoryRef `json:"categories,omitempty"`
	Author       *Author       `json:"author,omitempty"`
}

// PlainExcerpt returns the stored excerpt, or the first text span of
// the first plain block when none is stored, or fallback when the body
// yields nothing either.
func (p *Post) PlainExcerpt(fallback string) string {
	if p.Excerpt != "" {
		return p.Excerpt
	}
	for _, block := range p.Body {
		if block.Type != BlockTypeText || len(block.Children) == 0 {
			continue
		}
		if text := block.Children[0].Text; text != "" {
			return text
		}
		break
	}
	return fallback
}

// AuthorInitial returns the first rune of the author's name for the
// avatar placeholder, or "?" when no author is set.
func (p *Post) AuthorInitial() string {
	if p.Author == nil || p.Author.Name == "" {
		return "?"
	}
	for _, r := range p.Author.Name {
		return string(r)
	}
	return "?"
}
