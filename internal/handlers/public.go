// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the public pages: the home grid with
// search and pagination, post detail pages, and category archives.
// Every page is an independent pure computation over freshly fetched
// content; the rendered-page cache in front is the only reuse.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"patrika/internal/bangla"
	"patrika/internal/cache"
	"patrika/internal/content"
	"patrika/internal/listing"
	"patrika/internal/portabletext"
	"patrika/internal/readtime"
	"patrika/internal/render"
	"patrika/internal/sanity"
)

// defaultExcerpt is shown when a post has neither a stored excerpt nor
// a usable first paragraph.
const defaultExcerpt = "Read this interesting article..."

// Options carries the page tunables from config.
type Options struct {
	SiteName       string
	HomeFetchLimit int
	PageSize       int
}

// Public groups the handlers for the public site. It checks the
// rendered-page cache before fetching, and stores results on miss.
type Public struct {
	store     *content.Store
	client    *sanity.Client
	renderer  *render.Renderer
	pageCache *cache.PageCache
	estimator *readtime.Estimator
	richText  *portabletext.Renderer
	opts      Options
}

// NewPublic creates the public handler group. pageCache may be nil.
func NewPublic(store *content.Store, client *sanity.Client, renderer *render.Renderer, pageCache *cache.PageCache, estimator *readtime.Estimator, opts Options) *Public {
	if opts.HomeFetchLimit <= 0 {
		opts.HomeFetchLimit = 12
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 9
	}
	richText := portabletext.Default(func(ref string, w, h int) string {
		return client.ImageURL(ref, sanity.ImageOptions{Width: w, Height: h, Fit: "max", AutoFormat: true})
	})
	return &Public{
		store:     store,
		client:    client,
		renderer:  renderer,
		pageCache: pageCache,
		estimator: estimator,
		richText:  richText,
		opts:      opts,
	}
}

// Home renders the post grid with the search filter and pager driven
// by the q and page query parameters. A fetch failure degrades to an
// inline section error — the page chrome still renders. Only the
// unfiltered first page is cached.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	cacheable := query == "" && page == 1

	if cacheable {
		if cached, ok := p.pageCache.Get(ctx, cache.HomeKey()); ok {
			writeHTML(w, cached)
			return
		}
	}

	posts, err := p.store.RecentPosts(ctx, p.opts.HomeFetchLimit)
	if err != nil {
		slog.Error("home posts fetch failed", "error", err)
		p.renderer.Page(w, http.StatusOK, "home", &render.HomeData{
			SiteName:  p.opts.SiteName,
			Query:     query,
			LoadError: true,
		})
		return
	}

	filtered := listing.Filter(posts, query)
	pager := listing.NewPager(len(filtered), p.opts.PageSize)
	pager.SetPage(page)

	data := &render.HomeData{
		SiteName:   p.opts.SiteName,
		Query:      query,
		Posts:      p.postCards(pager.Slice(filtered), false),
		PageLabel:  bangla.NumeralsInt(pager.Page()),
		TotalLabel: bangla.NumeralsInt(pager.TotalPages()),
		HasPrev:    pager.HasPrev(),
		HasNext:    pager.HasNext(),
		PrevURL:    homeURL(query, pager.Page()-1),
		NextURL:    homeURL(query, pager.Page()+1),
		ShowPager:  pager.TotalPages() > 1,
	}
	if len(posts) > 0 {
		card := p.postCard(&posts[0], false)
		data.Featured = &card
	}

	out, err := p.renderer.Render("home", data)
	if err != nil {
		slog.Error("home render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if cacheable {
		p.pageCache.Set(ctx, cache.HomeKey(), out)
	}
	writeHTML(w, out)
}

// Post renders a post detail page by slug. The post and the category
// sidebar are fetched concurrently and joined all-or-nothing: both
// must arrive before rendering proceeds.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := pathParam(r, "slug")
	if slug == "" {
		p.NotFound(w, r)
		return
	}

	if cached, ok := p.pageCache.Get(ctx, cache.PostKey(slug)); ok {
		writeHTML(w, cached)
		return
	}

	var (
		post *content.Post
		cats []content.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		post, err = p.store.PostBySlug(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = p.store.Categories(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			p.NotFound(w, r)
			return
		}
		slog.Error("post page fetch failed", "error", err, "slug", slug)
		p.errorPage(w)
		return
	}

	data := &render.PostData{
		SiteName:     p.opts.SiteName,
		Title:        post.Title,
		Categories:   post.Categories,
		Date:         bangla.Date(post.PublishedAt),
		Time:         bangla.Time(post.PublishedAt),
		ReadingTime:  p.estimator.Display(post.Body),
		MainImageURL: p.mainImage(post, 800, 450),
		BodyHTML:     p.richText.Render(post.Body),
		Author:       p.authorBox(post.Author),
		Sidebar:      p.sidebar(cats, ""),
	}

	out, err := p.renderer.Render("post", data)
	if err != nil {
		slog.Error("post render failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pageCache.Set(ctx, cache.PostKey(slug), out)
	writeHTML(w, out)
}

// Category renders a category archive: all posts referencing the
// category, the sidebar tree, and the category's description. The
// three fetches run concurrently; a missing description degrades to
// none rather than failing the page.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	title := pathParam(r, "title")
	if title == "" {
		p.NotFound(w, r)
		return
	}

	if cached, ok := p.pageCache.Get(ctx, cache.CategoryKey(title)); ok {
		writeHTML(w, cached)
		return
	}

	var (
		posts   []content.Post
		cats    []content.Category
		current *content.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = p.store.PostsByCategory(gctx, title)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = p.store.Categories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		current, err = p.store.CategoryByTitle(gctx, title)
		if errors.Is(err, content.ErrNotFound) {
			// Unknown titles still render an archive shell with the
			// localized empty state; description is simply absent.
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("category page fetch failed", "error", err, "title", title)
		p.errorPage(w)
		return
	}

	data := &render.CategoryData{
		SiteName: p.opts.SiteName,
		Title:    title,
		Posts:    p.postCards(posts, true),
		Sidebar:  p.sidebar(cats, title),
	}
	if current != nil {
		data.Description = current.Description
	}

	out, err := p.renderer.Render("category", data)
	if err != nil {
		slog.Error("category render failed", "error", err, "title", title)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pageCache.Set(ctx, cache.CategoryKey(title), out)
	writeHTML(w, out)
}

// NotFound renders the localized 404 page.
func (p *Public) NotFound(w http.ResponseWriter, _ *http.Request) {
	p.renderer.Page(w, http.StatusNotFound, "notfound", &render.MessageData{
		SiteName: p.opts.SiteName,
		Title:    "পাওয়া যায়নি",
		Message:  "আপনি যা খুঁজছেন তা এখানে নেই",
	})
}

// errorPage renders the localized failed-to-load page.
func (p *Public) errorPage(w http.ResponseWriter) {
	p.renderer.Page(w, http.StatusInternalServerError, "error", &render.MessageData{
		SiteName: p.opts.SiteName,
		Title:    "কিছু একটা ভুল হয়েছে",
		Message:  "পাতাটি লোড করা যায়নি — কিছুক্ষণ পরে আবার চেষ্টা করুন",
	})
}

// postCard shapes one post into its grid card. sized selects the
// 800x450 CDN variant (archive cards) over the stored asset URL
// (home grid).
func (p *Public) postCard(post *content.Post, sized bool) render.PostCard {
	imageURL := post.MainImageURL
	if sized {
		imageURL = p.mainImage(post, 800, 450)
	}
	card := render.PostCard{
		Title:         post.Title,
		Slug:          post.Slug,
		ImageURL:      imageURL,
		Excerpt:       post.PlainExcerpt(defaultExcerpt),
		Categories:    post.Categories,
		PublishedDate: bangla.Date(post.PublishedAt),
		ReadingTime:   p.estimator.Display(post.Body),
		AuthorInitial: post.AuthorInitial(),
	}
	if post.Author != nil {
		card.AuthorName = post.Author.Name
		if post.Author.ImageRef != "" {
			card.AuthorImageURL = p.client.ImageURL(post.Author.ImageRef, sanity.ImageOptions{Width: 40, Height: 40})
		}
	}
	return card
}

func (p *Public) postCards(posts []content.Post, sized bool) []render.PostCard {
	cards := make([]render.PostCard, len(posts))
	for i := range posts {
		cards[i] = p.postCard(&posts[i], sized)
	}
	return cards
}

// mainImage prefers the sized CDN variant built from the raw asset
// ref; the pre-resolved URL is the fallback when the ref is absent.
func (p *Public) mainImage(post *content.Post, width, height int) string {
	if post.MainImageRef != "" {
		if u := p.client.ImageURL(post.MainImageRef, sanity.ImageOptions{Width: width, Height: height}); u != "" {
			return u
		}
	}
	return post.MainImageURL
}

// authorBox shapes the author section; nil in, nil out — the template
// omits the section entirely.
func (p *Public) authorBox(author *content.Author) *render.AuthorBox {
	if author == nil {
		return nil
	}
	box := &render.AuthorBox{
		Name:    author.Name,
		BioHTML: p.richText.Render(author.Bio),
	}
	if author.ImageRef != "" {
		box.ImageURL = p.client.ImageURL(author.ImageRef, sanity.ImageOptions{Width: 50, Height: 50})
	}
	if box.ImageURL == "" {
		box.Initial = initial(author.Name)
	}
	return box
}

// sidebar assembles the category tree view, marking the active entry.
func (p *Public) sidebar(cats []content.Category, active string) []render.SidebarItem {
	tree := listing.BuildCategoryTree(cats)
	items := make([]render.SidebarItem, len(tree))
	for i, node := range tree {
		item := render.SidebarItem{
			Title:  node.Title,
			Link:   node.Link,
			Count:  bangla.NumeralsInt(node.PostCount),
			Active: node.Title == active,
		}
		if node.ImageRef != "" {
			item.ImageURL = p.client.ImageURL(node.ImageRef, sanity.ImageOptions{Width: 100, Height: 100})
		}
		for _, sub := range node.SubCategories {
			item.Subs = append(item.Subs, render.SidebarSub{
				Title: sub.Title,
				Slug:  sub.Slug,
				Count: bangla.NumeralsInt(sub.PostCount),
			})
		}
		items[i] = item
	}
	return items
}

// pathParam returns the named chi route parameter, percent-decoded.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// homeURL builds a home link carrying the search query and page.
func homeURL(query string, page int) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}

func writeHTML(w http.ResponseWriter, out []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// initial returns the first rune of a name for the avatar placeholder.
func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}
