// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package readtime estimates how long an article takes to read. Every
// page that shows a reading time goes through the same Estimator so
// the figure is consistent site-wide.
package readtime

import (
	"strings"

	"patrika/internal/bangla"
	"patrika/internal/content"
)

// DefaultWordsPerMinute is the reading speed assumed when the config
// does not override it.
const DefaultWordsPerMinute = 200

// Estimator computes reading times at a fixed words-per-minute rate.
type Estimator struct {
	WordsPerMinute int
}

// New creates an Estimator. A non-positive rate falls back to the
// default.
func New(wordsPerMinute int) *Estimator {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	return &Estimator{WordsPerMinute: wordsPerMinute}
}

// Minutes returns the estimated whole minutes needed to read the
// document, rounding up. Only plain text blocks contribute words;
// embedded media and unknown block types count zero. A nil or empty
// document — and any document with zero words — yields 0 minutes.
func (e *Estimator) Minutes(doc []content.Block) int {
	words := WordCount(doc)
	if words == 0 {
		return 0
	}
	return (words + e.WordsPerMinute - 1) / e.WordsPerMinute
}

// Display renders the minute estimate in Bangla numerals.
func (e *Estimator) Display(doc []content.Block) string {
	return bangla.NumeralsInt(e.Minutes(doc))
}

// WordCount sums the whitespace-separated tokens across the text spans
// of every plain block in the document.
func WordCount(doc []content.Block) int {
	total := 0
	for _, block := range doc {
		if block.Type != content.BlockTypeText || len(block.Children) == 0 {
			continue
		}
		for _, span := range block.Children {
			total += len(strings.Fields(span.Text))
		}
	}
	return total
}
