// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"fmt"
	"net/url"
	"time"

	"github.com/taibuivan/spectator/internal/core/role"
)

// Kind distinguishes books from issues of periodicals.
type Kind string

const (
	KindBook       Kind = "book"
	KindPeriodical Kind = "periodical"
)

// Valid reports whether k is a known publication kind.
func (k Kind) Valid() bool {
	return k == KindBook || k == KindPeriodical
}

/*
Publication is a book or an issue of a periodical.

AmazonURLs and HasURLs are derived on every read and never stored.
*/
type Publication struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	TitleSort   string      `json:"title_sort"`
	Kind        Kind        `json:"kind"`
	SeriesID    *int64      `json:"series_id"`
	SeriesTitle *string     `json:"series_title"`
	OfficialURL string      `json:"official_url"`
	ISBNUK      string      `json:"isbn_uk"`
	ISBNUS      string      `json:"isbn_us"`
	NotesURL    string      `json:"notes_url"`
	Roles       []role.Role `json:"roles"`
	AmazonURLs  []AmazonURL `json:"amazon_urls"`
	HasURLs     bool        `json:"has_urls"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PublicationDetail is a publication with every period it was read in.
type PublicationDetail struct {
	*Publication
	Readings []*Reading `json:"readings"`
}

// PublicationInput is the write shape of a [Publication].
type PublicationInput struct {
	Title       string       `json:"title"`
	Kind        Kind         `json:"kind"`
	SeriesID    *int64       `json:"series_id"`
	OfficialURL string       `json:"official_url"`
	ISBNUK      string       `json:"isbn_uk"`
	ISBNUS      string       `json:"isbn_us"`
	NotesURL    string       `json:"notes_url"`
	Roles       []role.Input `json:"roles"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (publication *Publication) Input() PublicationInput {
	return PublicationInput{
		Title:       publication.Title,
		Kind:        publication.Kind,
		SeriesID:    publication.SeriesID,
		OfficialURL: publication.OfficialURL,
		ISBNUK:      publication.ISBNUK,
		ISBNUS:      publication.ISBNUS,
		NotesURL:    publication.NotesURL,
		Roles:       role.Inputs(publication.Roles),
	}
}

// PublicationFilter narrows a publication listing. The zero value lists everything.
type PublicationFilter struct {
	Kind Kind

	// InProgress keeps publications with a reading that has started but not ended.
	InProgress bool

	// Unread keeps publications with no reading at all.
	Unread bool
}

// # Shop Links

// AmazonURL is one shop link for a publication.
type AmazonURL struct {
	URL     string `json:"url"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// AmazonTags are the affiliate ids per store. Empty tags leave the links untagged.
type AmazonTags struct {
	UK string
	US string
}

// URLs builds the shop links for the ISBNs a publication has, UK first.
func (tags AmazonTags) URLs(publication *Publication) []AmazonURL {
	links := []AmazonURL{}

	if publication.ISBNUK != "" {
		links = append(links, AmazonURL{
			URL:     withTag(fmt.Sprintf("https://www.amazon.co.uk/gp/product/%s/", publication.ISBNUK), tags.UK),
			Name:    "Amazon.co.uk",
			Country: "UK",
		})
	}

	if publication.ISBNUS != "" {
		links = append(links, AmazonURL{
			URL:     withTag(fmt.Sprintf("https://www.amazon.com/dp/%s/", publication.ISBNUS), tags.US),
			Name:    "Amazon.com",
			Country: "USA",
		})
	}

	return links
}

func withTag(link, tag string) string {
	if tag == "" {
		return link
	}
	return link + "?tag=" + url.QueryEscape(tag)
}

// hasURLs reports whether a publication has anything worth linking to.
func hasURLs(publication *Publication) bool {
	return publication.ISBNUK != "" || publication.ISBNUS != "" ||
		publication.OfficialURL != "" || publication.NotesURL != ""
}

// Global field names for validation
const (
	FieldTitle            = "title"
	FieldURL              = "url"
	FieldKind             = "kind"
	FieldSeriesID         = "series_id"
	FieldOfficialURL      = "official_url"
	FieldISBNUK           = "isbn_uk"
	FieldISBNUS           = "isbn_us"
	FieldNotesURL         = "notes_url"
	FieldRoles            = "roles"
	FieldStartGranularity = "start_granularity"
	FieldEndGranularity   = "end_granularity"
)
