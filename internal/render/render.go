// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Templates are embedded in the binary; each page template is paired
// with the base layout. Rendering produces bytes so handlers can hand
// the result to the page cache before writing it out.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"patrika/internal/bangla"
	"patrika/internal/content"
)

//go:embed templates/public/*.html
var publicFS embed.FS

// PostCard is one entry of a post grid or archive list. Dates, reading
// times, and counts arrive pre-localized; templates only place them.
type PostCard struct {
	Title          string
	Slug           string
	ImageURL       string
	Excerpt        string
	Categories     []content.CategoryRef
	PublishedDate  string
	ReadingTime    string
	AuthorName     string
	AuthorImageURL string
	AuthorInitial  string
}

// SidebarSub is one subcategory row inside an expanded sidebar entry.
type SidebarSub struct {
	Title string
	Slug  string
	Count string // localized post count
}

// SidebarItem is one category entry of the sidebar tree, with its
// URL-escaped link segment and localized post count. Active marks the
// category whose archive is currently shown; its subcategory list
// renders expanded.
type SidebarItem struct {
	Title    string
	Link     string
	ImageURL string
	Count    string
	Active   bool
	Subs     []SidebarSub
}

// AuthorBox is the author section under a post body. Nil means the
// post has no author and the section is omitted entirely.
type AuthorBox struct {
	Name     string
	ImageURL string
	Initial  string
	BioHTML  template.HTML
}

// HomeData drives the home page: featured post, grid window, search
// query, and pager state.
type HomeData struct {
	SiteName   string
	Query      string
	Featured   *PostCard
	Posts      []PostCard
	PageLabel  string // current page, localized
	TotalLabel string // total pages, localized
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
	ShowPager  bool
	LoadError  bool
}

// PostData drives the post detail page.
type PostData struct {
	SiteName     string
	Title        string
	Categories   []content.CategoryRef
	Date         string
	Time         string
	ReadingTime  string
	MainImageURL string
	BodyHTML     template.HTML
	Author       *AuthorBox
	Sidebar      []SidebarItem
}

// CategoryData drives a category archive page.
type CategoryData struct {
	SiteName    string
	Title       string
	Description string
	Posts       []PostCard
	Sidebar     []SidebarItem
}

// MessageData drives the not-found and error pages.
type MessageData struct {
	SiteName string
	Title    string
	Message  string
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all public templates from the
// embedded filesystem, pairing each page with the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// banglaNum localizes an integer for display (post counts, years).
		"banglaNum": bangla.NumeralsInt,
		// banglaDigits localizes digits inside an already-formatted string.
		"banglaDigits": bangla.Numerals,
	}

	rn := &Renderer{templates: make(map[string]*template.Template)}

	entries, err := publicFS.ReadDir("templates/public")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			publicFS, "templates/public/base.html", "templates/public/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		rn.templates[name[:len(name)-len(".html")]] = tmpl
	}

	return rn, nil
}

// Render executes the named page template into bytes.
func (rn *Renderer) Render(name string, data any) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders the named template and writes it with the given status.
// Template failures become a plain 500 — they are programming errors,
// not content errors.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data any) {
	out, err := rn.Render(name, data)
	if err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(out)
}
