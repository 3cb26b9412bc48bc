// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sortkey derives natural sort keys from display titles and names.
//
// # Usage
//
// Every titled record (venues, movies, plays, publications, concerts...) stores
// the key next to its title so lists can be ordered by an indexed column.
// The key is recomputed on every write and is never accepted from clients.
//
//	sortkey.From("The Aardvarks") // "aardvarks, the"
//	sortkey.From("A Bat")         // "bat, a"
//	sortkey.From("Chipmunks")     // "chipmunks"
package sortkey

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MaxLen is the width of the *_sort columns; longer keys are cut to fit.
const MaxLen = 255

// leadingArticle matches an English article followed by whitespace and a non-empty remainder.
var leadingArticle = regexp.MustCompile(`^(the|an|a)\s+(\S.*)$`)

// From converts a display string into its comparison key.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace and normalizes to NFC.
// 2. Case-folds the text.
// 3. Moves a leading "the", "a" or "an" to a trailing ", <article>" suffix.
//
// Titles without a recognized article pass through folded but otherwise unchanged.
func From(s string) string {
	result := norm.NFC.String(strings.TrimSpace(s))

	// A Caser keeps internal state, so each call gets its own.
	result = cases.Fold().String(result)

	if match := leadingArticle.FindStringSubmatch(result); match != nil {
		result = match[2] + ", " + match[1]
	}

	return truncate(result, MaxLen)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
