// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sortkey_test

import (
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/spectator/pkg/sortkey"
)

/*
TestFrom_Articles verifies that leading articles move to a trailing suffix.
*/
func TestFrom_Articles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"definite", "The Aardvarks", "aardvarks, the"},
		{"indefinite_a", "A Bat", "bat, a"},
		{"indefinite_an", "An Owl", "owl, an"},
		{"upper_case_article", "THE WIRE", "wire, the"},
		{"lower_case_article", "the drifters", "drifters, the"},
		{"extra_whitespace", "  The   Big Sleep ", "big sleep, the"},
		{"tab_separator", "A\tFilm", "film, a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortkey.From(tt.input))
		})
	}
}

/*
TestFrom_PassThrough checks titles without a recognized article.
*/
func TestFrom_PassThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Chipmunks", "chipmunks"},
		{"article_prefix_in_word", "Theremin Nights", "theremin nights"},
		{"article_only", "The", "the"},
		{"article_with_trailing_space", "A ", "a"},
		{"anagram_prefix", "Another Country", "another country"},
		{"empty", "", ""},
		{"non_latin", "Ωmega", "ωmega"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortkey.From(tt.input))
		})
	}
}

/*
TestFrom_Deterministic re-derives keys from the same titles.
*/
func TestFrom_Deterministic(t *testing.T) {
	for _, title := range []string{"The Aardvarks", "A Bat", "Chipmunks", "La Haine"} {
		assert.Equal(t, sortkey.From(title), sortkey.From(title))
	}
}

/*
TestFrom_Ordering sorts titles by their derived keys.
*/
func TestFrom_Ordering(t *testing.T) {
	titles := []string{"Chipmunks", "The Aardvarks", "A Bat"}

	sort.SliceStable(titles, func(i, j int) bool {
		return sortkey.From(titles[i]) < sortkey.From(titles[j])
	})

	assert.Equal(t, []string{"The Aardvarks", "A Bat", "Chipmunks"}, titles)
}

func TestFrom_TruncatesToColumnWidth(t *testing.T) {
	title := "The " + strings.Repeat("é", 300)

	key := sortkey.From(title)
	assert.Equal(t, sortkey.MaxLen, utf8.RuneCountInString(key))
	assert.True(t, strings.HasPrefix(key, "ééé"))
}
