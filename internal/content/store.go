// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"

	"patrika/internal/sanity"
)

// GROQ projections. Post counts are computed inside the query on every
// request — they are derived read-time aggregates, never stored or
// cached at this layer, so a post added between two fetches shows up in
// the very next count.
const (
	recentPostsQuery = `*[_type == "post" && defined(slug.current)]|order(publishedAt desc)[0...$limit]{
  _id,
  title,
  "slug": slug.current,
  publishedAt,
  "mainImageUrl": mainImage.asset->url,
  "mainImageRef": mainImage.asset._ref,
  excerpt,
  body,
  categories[]->{
    title,
    subCategories[]->{title, "slug": slug.current}
  }
}`

	postBySlugQuery = `*[_type == "post" && slug.current == $slug][0]{
  _id,
  title,
  "slug": slug.current,
  publishedAt,
  "mainImageUrl": mainImage.asset->url,
  "mainImageRef": mainImage.asset._ref,
  excerpt,
  body,
  categories[]->{
    title,
    subCategories[]->{title, "slug": slug.current}
  },
  author->{
    name,
    "imageRef": image.asset._ref,
    bio
  }
}`

	postsByCategoryQuery = `*[_type == "post" && references(*[_type == "category" && title == $title]._id)]|order(publishedAt desc){
  _id,
  title,
  "slug": slug.current,
  publishedAt,
  "mainImageUrl": mainImage.asset->url,
  "mainImageRef": mainImage.asset._ref,
  excerpt,
  body,
  categories[]->{
    title,
    subCategories[]->{title, "slug": slug.current}
  },
  author->{
    name,
    "imageRef": image.asset._ref
  }
}`

	categoriesQuery = `*[_type == "category"]|order(title asc){
  title,
  description,
  "imageRef": image.asset._ref,
  "postCount": count(*[_type == "post" && references(^._id)]),
  subCategories[]->{
    title,
    "slug": slug.current,
    "postCount": count(*[_type == "post" && references(^._id)])
  }
}`

	categoryByTitleQuery = `*[_type == "category" && title == $title][0]{
  title,
  description
}`
)

// Store issues the typed queries the pages need. It is a thin layer
// over the sanity client: shaping lives in the GROQ projections above,
// absence detection lives here.
type Store struct {
	client *sanity.Client
}

// NewStore creates a typed content store over the given client.
func NewStore(client *sanity.Client) *Store {
	return &Store{client: client}
}

// RecentPosts returns the newest posts with a defined slug, newest
// first, capped at limit by the store.
func (s *Store) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	var posts []Post
	err := s.client.Query(ctx, recentPostsQuery, map[string]any{"limit": limit}, &posts)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	return posts, nil
}

// PostBySlug returns the full detail projection for one post, or
// ErrNotFound when no post has that slug.
func (s *Store) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	var post *Post
	err := s.client.Query(ctx, postBySlugQuery, map[string]any{"slug": slug}, &post)
	if err != nil {
		return nil, fmt.Errorf("post by slug %q: %w", slug, err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// PostsByCategory returns all posts referencing the category with the
// given title (exact, case-sensitive match), newest first. An unknown
// title yields an empty slice, not an error — the archive page renders
// its localized empty state.
func (s *Store) PostsByCategory(ctx context.Context, title string) ([]Post, error) {
	var posts []Post
	err := s.client.Query(ctx, postsByCategoryQuery, map[string]any{"title": title}, &posts)
	if err != nil {
		return nil, fmt.Errorf("posts by category %q: %w", title, err)
	}
	return posts, nil
}

// Categories returns every category with its derived post count and
// subcategory entries, ordered by title ascending at the store.
func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	var cats []Category
	err := s.client.Query(ctx, categoriesQuery, nil, &cats)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return cats, nil
}

// CategoryByTitle returns the description projection of one category,
// or ErrNotFound when the title matches nothing.
func (s *Store) CategoryByTitle(ctx context.Context, title string) (*Category, error) {
	var cat *Category
	err := s.client.Query(ctx, categoryByTitleQuery, map[string]any{"title": title}, &cat)
	if err != nil {
		return nil, fmt.Errorf("category by title %q: %w", title, err)
	}
	if cat == nil {
		return nil, ErrNotFound
	}
	return cat, nil
}
