// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import (
	"fmt"
	"testing"

	"patrika/internal/content"
)

func post(title string, cats ...content.CategoryRef) content.Post {
	return content.Post{Title: title, Slug: title, Categories: cats}
}

func TestBuildCategoryTree_SortedWithSubsPreserved(t *testing.T) {
	cats := []content.Category{
		{Title: "Tech", PostCount: 5, SubCategories: []content.SubCategory{
			{Title: "AI", Slug: "ai", PostCount: 3},
			{Title: "Web", Slug: "web", PostCount: 2},
		}},
		{Title: "Art", PostCount: 1},
	}

	nodes := BuildCategoryTree(cats)
	if len(nodes) != 2 {
		t.Fatalf("nodes: got %d, want 2", len(nodes))
	}
	if nodes[0].Title != "Art" || nodes[1].Title != "Tech" {
		t.Errorf("order: got %q, %q", nodes[0].Title, nodes[1].Title)
	}
	if len(nodes[1].SubCategories) != 2 || nodes[1].SubCategories[0].Title != "AI" {
		t.Errorf("subcategories not carried through: got %+v", nodes[1].SubCategories)
	}
	if nodes[1].PostCount != 5 {
		t.Errorf("post count: got %d, want 5", nodes[1].PostCount)
	}
}

func TestBuildCategoryTree_LinksAreEscaped(t *testing.T) {
	nodes := BuildCategoryTree([]content.Category{{Title: "বাংলা ব্লগ"}})
	if nodes[0].Link != "%E0%A6%AC%E0%A6%BE%E0%A6%82%E0%A6%B2%E0%A6%BE%20%E0%A6%AC%E0%A7%8D%E0%A6%B2%E0%A6%97" {
		t.Errorf("link: got %q", nodes[0].Link)
	}
}

func TestBuildCategoryTree_Empty(t *testing.T) {
	if nodes := BuildCategoryTree(nil); len(nodes) != 0 {
		t.Errorf("nodes: got %d, want 0", len(nodes))
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	posts := []content.Post{post("এক"), post("দুই")}
	got := Filter(posts, "")
	if len(got) != 2 {
		t.Errorf("posts: got %d, want 2", len(got))
	}
}

func TestFilter_TitleCaseInsensitive(t *testing.T) {
	posts := []content.Post{
		post("Getting Started with Go"),
		post("Python Basics"),
	}
	got := Filter(posts, "go")
	if len(got) != 1 || got[0].Title != "Getting Started with Go" {
		t.Errorf("filter: got %+v", got)
	}
}

func TestFilter_MatchesCategoryTitleOnly(t *testing.T) {
	// A query that matches a category but no post title still returns
	// every post tagged with that category.
	tech := content.CategoryRef{Title: "Tech"}
	posts := []content.Post{
		post("কৃত্রিম বুদ্ধিমত্তা", tech),
		post("রান্নার রেসিপি", content.CategoryRef{Title: "Food"}),
	}
	got := Filter(posts, "tech")
	if len(got) != 1 || got[0].Title != "কৃত্রিম বুদ্ধিমত্তা" {
		t.Errorf("filter by category: got %+v", got)
	}
}

func TestFilter_MatchesSubCategoryTitle(t *testing.T) {
	posts := []content.Post{
		post("নতুন মডেল", content.CategoryRef{
			Title:         "Tech",
			SubCategories: []content.SubCategory{{Title: "Machine Learning"}},
		}),
	}
	if got := Filter(posts, "machine"); len(got) != 1 {
		t.Errorf("filter by subcategory: got %+v", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	var posts []content.Post
	for i := 0; i < 5; i++ {
		posts = append(posts, post(fmt.Sprintf("post-%d", i)))
	}
	got := Filter(posts, "post")
	for i, p := range got {
		if p.Title != fmt.Sprintf("post-%d", i) {
			t.Fatalf("order broken at %d: got %q", i, p.Title)
		}
	}
}

func TestPager_TwentyItemsPageSizeNine(t *testing.T) {
	p := NewPager(20, 9)
	if p.TotalPages() != 3 {
		t.Fatalf("TotalPages: got %d, want 3", p.TotalPages())
	}
	if p.Page() != 1 || p.HasPrev() {
		t.Errorf("fresh pager: page %d, HasPrev %v", p.Page(), p.HasPrev())
	}

	// Prev at the lower bound stays at page 1.
	p.Prev()
	if p.Page() != 1 {
		t.Errorf("Prev at page 1: got %d", p.Page())
	}

	p.Next()
	p.Next()
	if p.Page() != 3 || p.HasNext() {
		t.Errorf("after two Next: page %d, HasNext %v", p.Page(), p.HasNext())
	}

	// Next at the upper bound stays at the last page.
	p.Next()
	if p.Page() != 3 {
		t.Errorf("Next at last page: got %d", p.Page())
	}
}

func TestPager_SetPageClamps(t *testing.T) {
	p := NewPager(20, 9)
	p.SetPage(99)
	if p.Page() != 3 {
		t.Errorf("SetPage(99): got %d, want 3", p.Page())
	}
	p.SetPage(-4)
	if p.Page() != 1 {
		t.Errorf("SetPage(-4): got %d, want 1", p.Page())
	}
}

func TestPager_Slice(t *testing.T) {
	var posts []content.Post
	for i := 0; i < 20; i++ {
		posts = append(posts, post(fmt.Sprintf("post-%d", i)))
	}

	p := NewPager(len(posts), 9)
	if got := p.Slice(posts); len(got) != 9 || got[0].Title != "post-0" {
		t.Errorf("page 1: len %d, first %q", len(got), got[0].Title)
	}

	p.SetPage(3)
	got := p.Slice(posts)
	if len(got) != 2 || got[0].Title != "post-18" || got[1].Title != "post-19" {
		t.Errorf("page 3: got %+v", got)
	}
}

func TestPager_Empty(t *testing.T) {
	p := NewPager(0, 9)
	if p.TotalPages() != 0 {
		t.Errorf("TotalPages: got %d, want 0", p.TotalPages())
	}
	if p.HasNext() || p.HasPrev() {
		t.Error("empty pager should have no navigation")
	}
	if got := p.Slice(nil); got != nil {
		t.Errorf("Slice: got %v, want nil", got)
	}
}
