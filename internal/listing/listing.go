// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package listing builds the view-models for post listings: the
// category sidebar tree, the search filter over a fetched post
// collection, and the clamped pager that windows it for the grid.
package listing

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"patrika/internal/content"
)

// CategoryNode is one sidebar entry: the category as fetched, plus the
// URL-escaped link segment pages use for /category/{title} routes.
// Title is the identity key in links because that is how the content
// store resolves categories; escaping keeps spaces and Bangla titles
// routable.
type CategoryNode struct {
	content.Category
	Link string
}

// bengali orders strings Bangla-aware; byte-wise comparison misorders
// conjunct forms.
var bengali = collate.New(language.Bengali)

// BuildCategoryTree shapes the flat category entries into display
// order: categories sorted by title ascending, ties left in fetch
// order, each category's subcategory list carried through unchanged.
func BuildCategoryTree(cats []content.Category) []CategoryNode {
	nodes := make([]CategoryNode, len(cats))
	for i, cat := range cats {
		nodes[i] = CategoryNode{
			Category: cat,
			Link:     url.PathEscape(cat.Title),
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return bengali.CompareString(nodes[i].Title, nodes[j].Title) < 0
	})
	return nodes
}

// Filter returns the posts whose title or any category/subcategory
// title contains query, case-insensitively. The input order is
// preserved (the store already sorted newest-first). An empty query
// returns the input unchanged.
func Filter(posts []content.Post, query string) []content.Post {
	if query == "" {
		return posts
	}
	q := strings.ToLower(query)
	var out []content.Post
	for _, post := range posts {
		if matches(&post, q) {
			out = append(out, post)
		}
	}
	return out
}

func matches(post *content.Post, q string) bool {
	if strings.Contains(strings.ToLower(post.Title), q) {
		return true
	}
	for _, cat := range post.Categories {
		if strings.Contains(strings.ToLower(cat.Title), q) {
			return true
		}
		for _, sub := range cat.SubCategories {
			if strings.Contains(strings.ToLower(sub.Title), q) {
				return true
			}
		}
	}
	return false
}

// Pager windows a filtered collection into fixed-size pages with
// clamped navigation. States are pages 1..TotalPages; Next and Prev
// are no-ops at the bounds. A new filter means a new Pager, which
// starts back at page 1.
type Pager struct {
	page     int
	pageSize int
	total    int
}

// NewPager creates a pager at page 1 over total items.
func NewPager(total, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	return &Pager{page: 1, pageSize: pageSize, total: total}
}

// Page returns the current page number (1-based).
func (p *Pager) Page() int { return p.page }

// TotalPages returns the number of pages; 0 when there are no items.
func (p *Pager) TotalPages() int {
	return (p.total + p.pageSize - 1) / p.pageSize
}

// SetPage jumps to the given page, clamped into [1, TotalPages].
func (p *Pager) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if last := p.TotalPages(); last > 0 && n > last {
		n = last
	}
	p.page = n
}

// Next advances one page, staying put on the last page.
func (p *Pager) Next() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

// Prev goes back one page, staying put on page 1.
func (p *Pager) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// HasNext reports whether a next page exists.
func (p *Pager) HasNext() bool { return p.page < p.TotalPages() }

// HasPrev reports whether a previous page exists.
func (p *Pager) HasPrev() bool { return p.page > 1 }

// Slice returns the window of posts for the current page. The slice
// aliases the input; callers treat it as read-only.
func (p *Pager) Slice(posts []content.Post) []content.Post {
	start := (p.page - 1) * p.pageSize
	if start >= len(posts) {
		return nil
	}
	end := start + p.pageSize
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}
