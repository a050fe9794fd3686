// ABOUTME: Media domain model represents an openly licensed media record
// ABOUTME: Provides validation logic to ensure media data integrity

package domain

import (
	"errors"
	"net/url"
)

// MediaType identifies the kind of media a record holds
type MediaType string

const (
	// MediaTypeImage is a still image record
	MediaTypeImage MediaType = "image"

	// MediaTypeAudio is an audio record
	MediaTypeAudio MediaType = "audio"
)

// SearchType is either a concrete media type or the pseudo-type "all"
type SearchType string

const (
	SearchTypeImage SearchType = "image"
	SearchTypeAudio SearchType = "audio"
	SearchTypeAll   SearchType = "all"
)

// SupportedMediaTypes returns all media types in their fixed iteration order.
// The order matters: compound fetch-state aggregation and result
// interleaving both walk the types in this order.
func SupportedMediaTypes() []MediaType {
	return []MediaType{MediaTypeImage, MediaTypeAudio}
}

// Valid reports whether the search type is one of image, audio, or all
func (s SearchType) Valid() bool {
	switch s {
	case SearchTypeImage, SearchTypeAudio, SearchTypeAll:
		return true
	default:
		return false
	}
}

// MediaType returns the concrete media type for a search type, or false
// for the pseudo-type "all"
func (s SearchType) MediaType() (MediaType, bool) {
	switch s {
	case SearchTypeImage:
		return MediaTypeImage, true
	case SearchTypeAudio:
		return MediaTypeAudio, true
	default:
		return "", false
	}
}

// Media represents a single openly licensed media record
type Media struct {
	// ID is the unique identifier (UUID) for the record
	ID string

	// Title is the display title, stripped of any markup
	Title string

	// OriginalTitle is the title exactly as the provider supplied it
	OriginalTitle string

	// ForeignLandingURL is the record's page on the provider's site
	ForeignLandingURL string

	// URL is the direct URL of the media file
	URL string

	// Thumbnail is the URL of a small preview image
	Thumbnail string

	// Creator is the name of the work's creator, if known
	Creator string

	// CreatorURL is the creator's profile page, if known
	CreatorURL string

	// License is the short license code (e.g. "by", "by-sa", "pdm")
	License string

	// LicenseVersion pairs with License to form a canonical license key
	LicenseVersion string

	// LicenseURL is the deed URL for the license, if known
	LicenseURL string

	// Attribution is the provider-precomputed fallback attribution string
	Attribution string

	// Provider and Source identify where the record was ingested from
	Provider string
	Source   string

	// MediaType classifies the record as image or audio
	MediaType MediaType

	// Category is the provider-assigned category (e.g. "photograph", "music")
	Category string

	// FileType is the media file extension (e.g. "jpg", "mp3")
	FileType string

	// Duration is the playable length in seconds; zero for images
	Duration int
}

// Validate checks if the media record has valid required fields
func (m *Media) Validate() error {
	if m.ID == "" {
		return errors.New("media ID cannot be empty")
	}

	if m.License == "" {
		return errors.New("media license cannot be empty")
	}

	if m.MediaType != MediaTypeImage && m.MediaType != MediaTypeAudio {
		return errors.New("media type must be image or audio")
	}

	if m.ForeignLandingURL != "" {
		parsedURL, err := url.Parse(m.ForeignLandingURL)
		if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
			return errors.New("foreign landing URL is not valid format")
		}
	}

	return nil
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
