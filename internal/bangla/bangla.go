// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package bangla provides Bangla (bn-BD) localization helpers: digit
// substitution and date/time formatting used across all public pages.
package bangla

import (
	"strconv"
	"strings"
	"time"
)

// digits maps each ASCII digit 0-9 to its Bangla numeral glyph.
var digits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// months holds the Bangla names of the Gregorian months, January first.
var months = [12]string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল",
	"মে", "জুন", "জুলাই", "আগস্ট",
	"সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// Numerals replaces every ASCII digit in s with the Bangla numeral at
// the same position. Non-digit characters pass through unchanged, so a
// pre-formatted date or count keeps its shape. The empty string maps to
// the empty string.
func Numerals(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NumeralsInt renders a non-negative integer in Bangla numerals.
func NumeralsInt(n int) string {
	return Numerals(strconv.Itoa(n))
}

// Date formats t as a long Bangla date: "১৫ জানুয়ারি ২০২৬".
func Date(t time.Time) string {
	return NumeralsInt(t.Day()) + " " + months[t.Month()-1] + " " + NumeralsInt(t.Year())
}

// Time formats the clock portion of t as zero-padded 24-hour Bangla
// time: "০৯:০৫".
func Time(t time.Time) string {
	return Numerals(t.Format("15:04"))
}
