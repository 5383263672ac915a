// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package portabletext renders a rich-text block tree into HTML via a
// component map: one rendering function per block style, mark tag, and
// embedded block type. Unknown styles, marks, and types are skipped —
// an unrecognized node must never take the page down.
package portabletext

import (
	"html/template"
	"strings"

	"patrika/internal/content"
)

// BlockFunc renders one text block given its already-rendered inner
// HTML (children with marks applied, escaped).
type BlockFunc func(inner string) string

// MarkFunc wraps rendered span content for one mark tag.
type MarkFunc func(inner string, def *content.MarkDef) string

// TypeFunc renders one non-text block (e.g. an embedded image).
type TypeFunc func(block content.Block) string

// ImageURLFunc resolves an asset reference into a display URL. An
// empty return means the image is omitted.
type ImageURLFunc func(ref string, width, height int) string

// Renderer maps block styles, mark tags, and block types to rendering
// functions. The zero map entries fall through to "skip".
type Renderer struct {
	Blocks    map[string]BlockFunc
	Marks     map[string]MarkFunc
	ListItems map[string]string // listItem kind -> wrapping list tag ("ul"/"ol")
	Types     map[string]TypeFunc
}

// Default returns the site's component mapping. imageURL resolves
// embedded image blocks at 1200x630; a nil func omits them.
func Default(imageURL ImageURLFunc) *Renderer {
	r := &Renderer{
		Blocks: map[string]BlockFunc{
			"normal":     func(inner string) string { return "<p>" + inner + "</p>" },
			"h1":         heading("h1"),
			"h2":         heading("h2"),
			"h3":         heading("h3"),
			"h4":         heading("h4"),
			"blockquote": func(inner string) string { return "<blockquote>" + inner + "</blockquote>" },
		},
		Marks: map[string]MarkFunc{
			"strong": func(inner string, _ *content.MarkDef) string { return "<strong>" + inner + "</strong>" },
			"em":     func(inner string, _ *content.MarkDef) string { return "<em>" + inner + "</em>" },
			"link": func(inner string, def *content.MarkDef) string {
				if def == nil || def.Href == "" {
					return inner
				}
				return `<a href="` + template.HTMLEscapeString(def.Href) + `" rel="noopener">` + inner + `</a>`
			},
		},
		ListItems: map[string]string{
			"bullet": "ul",
			"number": "ol",
		},
		Types: map[string]TypeFunc{},
	}

	if imageURL != nil {
		r.Types["image"] = func(block content.Block) string {
			if block.Asset == nil {
				return ""
			}
			src := imageURL(block.Asset.Ref, 1200, 630)
			if src == "" {
				return ""
			}
			alt := block.Alt
			if alt == "" {
				alt = "ছবি"
			}
			return `<figure><img src="` + template.HTMLEscapeString(src) +
				`" alt="` + template.HTMLEscapeString(alt) + `" loading="lazy"></figure>`
		}
	}

	return r
}

func heading(tag string) BlockFunc {
	return func(inner string) string { return "<" + tag + ">" + inner + "</" + tag + ">" }
}

// Render walks the document and produces HTML. Consecutive list-item
// blocks of the same kind are grouped into a single list element. The
// result is safe to embed: every text span is HTML-escaped before any
// component wraps it.
func (r *Renderer) Render(doc []content.Block) template.HTML {
	var b strings.Builder
	openList := "" // currently open list tag, "" when none

	closeList := func() {
		if openList != "" {
			b.WriteString("</" + openList + ">")
			openList = ""
		}
	}

	for _, block := range doc {
		if block.Type != content.BlockTypeText {
			closeList()
			if fn, ok := r.Types[block.Type]; ok {
				b.WriteString(fn(block))
			}
			continue
		}

		inner := r.renderSpans(block)

		if block.ListItem != "" {
			tag, ok := r.ListItems[block.ListItem]
			if !ok {
				closeList()
				continue
			}
			if openList != tag {
				closeList()
				b.WriteString("<" + tag + ">")
				openList = tag
			}
			b.WriteString("<li>" + inner + "</li>")
			continue
		}

		closeList()
		style := block.Style
		if style == "" {
			style = "normal"
		}
		if fn, ok := r.Blocks[style]; ok {
			b.WriteString(fn(inner))
		}
	}
	closeList()

	return template.HTML(b.String())
}

// renderSpans escapes and mark-wraps the inline children of a block.
func (r *Renderer) renderSpans(block content.Block) string {
	defs := make(map[string]*content.MarkDef, len(block.MarkDefs))
	for i := range block.MarkDefs {
		defs[block.MarkDefs[i].Key] = &block.MarkDefs[i]
	}

	var b strings.Builder
	for _, span := range block.Children {
		text := template.HTMLEscapeString(span.Text)
		for _, mark := range span.Marks {
			if fn, ok := r.Marks[mark]; ok {
				text = fn(text, nil)
				continue
			}
			// Marks that are not plain decorators reference a markDef
			// by key (links). Unknown keys are skipped.
			if def, ok := defs[mark]; ok {
				if fn, ok := r.Marks[def.Type]; ok {
					text = fn(text, def)
				}
			}
		}
		b.WriteString(text)
	}
	return b.String()
}
