package mappers

import (
	"testing"

	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/results"
)

func TestToMediaResponse_NilMedia(t *testing.T) {
	if resp := ToMediaResponse(nil); resp != nil {
		t.Errorf("Expected nil response for nil media, got %+v", resp)
	}
}

func TestToMediaResponse_MapsAllFields(t *testing.T) {
	item := &domain.Media{
		ID:                "img1",
		Title:             "Morning Mist",
		OriginalTitle:     "Morning Mist (raw)",
		ForeignLandingURL: "https://example.com/img1",
		URL:               "https://example.com/img1.jpg",
		Thumbnail:         "https://example.com/img1_thumb.jpg",
		Creator:           "Ada",
		CreatorURL:        "https://example.com/ada",
		License:           "by-sa",
		LicenseVersion:    "4.0",
		LicenseURL:        "https://creativecommons.org/licenses/by-sa/4.0/",
		Attribution:       "precomputed",
		Provider:          "flickr",
		Source:            "flickr",
		MediaType:         domain.MediaTypeImage,
		Category:          "photograph",
		FileType:          "jpg",
	}

	resp := ToMediaResponse(item)

	if resp.ID != item.ID {
		t.Errorf("Expected ID %q, got %q", item.ID, resp.ID)
	}
	if resp.OriginalTitle != item.OriginalTitle {
		t.Errorf("Expected original title %q, got %q", item.OriginalTitle, resp.OriginalTitle)
	}
	if resp.MediaType != "image" {
		t.Errorf("Expected media type 'image', got %q", resp.MediaType)
	}
	if resp.License != "by-sa" || resp.LicenseVersion != "4.0" {
		t.Errorf("Expected license by-sa 4.0, got %s %s", resp.License, resp.LicenseVersion)
	}
	if resp.Duration != "" || resp.DurationSeconds != 0 {
		t.Errorf("Expected no duration for images, got %q/%d", resp.Duration, resp.DurationSeconds)
	}
}

func TestToMediaResponse_AudioDuration(t *testing.T) {
	item := &domain.Media{
		ID:        "aud1",
		License:   "by",
		MediaType: domain.MediaTypeAudio,
		Duration:  3675,
	}

	resp := ToMediaResponse(item)

	if resp.Duration != "01:01:15" {
		t.Errorf("Expected duration '01:01:15', got %q", resp.Duration)
	}
	if resp.DurationSeconds != 3675 {
		t.Errorf("Expected duration_seconds 3675, got %d", resp.DurationSeconds)
	}
}

func TestToMediaResponse_ZeroDurationOmitted(t *testing.T) {
	item := &domain.Media{
		ID:        "aud1",
		License:   "by",
		MediaType: domain.MediaTypeAudio,
	}

	resp := ToMediaResponse(item)

	if resp.Duration != "" {
		t.Errorf("Expected empty duration for zero-length audio, got %q", resp.Duration)
	}
}

func TestToMediaResponseWithColor(t *testing.T) {
	item := &domain.Media{ID: "img1", License: "by", MediaType: domain.MediaTypeImage}
	color := &domain.RGBColor{R: 1, G: 2, B: 3}

	resp := ToMediaResponseWithColor(item, color)

	if resp.ThumbnailColor == nil {
		t.Fatal("Expected thumbnail color to be attached")
	}
	if resp.ThumbnailColor.B != 3 {
		t.Errorf("Expected B=3, got %d", resp.ThumbnailColor.B)
	}

	if plain := ToMediaResponseWithColor(item, nil); plain.ThumbnailColor != nil {
		t.Error("Expected no thumbnail color when none is cached")
	}
}

func TestToMediaResponses_AttachesColorsByThumbnail(t *testing.T) {
	items := []*domain.Media{
		{ID: "a", License: "by", MediaType: domain.MediaTypeImage, Thumbnail: "https://example.com/a.jpg"},
		{ID: "b", License: "by", MediaType: domain.MediaTypeImage, Thumbnail: "https://example.com/b.jpg"},
		nil,
	}
	colors := map[string]*domain.RGBColor{
		"https://example.com/b.jpg": {R: 9, G: 9, B: 9},
	}

	out := ToMediaResponses(items, colors)

	if len(out) != 2 {
		t.Fatalf("Expected nil items to be skipped, got %d responses", len(out))
	}
	if out[0].ThumbnailColor != nil {
		t.Error("Expected no color for the first item")
	}
	if out[1].ThumbnailColor == nil || out[1].ThumbnailColor.R != 9 {
		t.Errorf("Expected color for the second item, got %+v", out[1].ThumbnailColor)
	}
}

func TestToFetchStateResponse(t *testing.T) {
	state := results.FetchState{
		HasStarted: true,
		IsFetching: false,
		IsFinished: true,
		Error: &results.ErrorInfo{
			RequestKind: "search",
			SearchType:  domain.SearchTypeAll,
			Code:        results.ErrorCodeNoResult,
			Message:     "no results",
		},
	}

	resp := ToFetchStateResponse(state)

	if !resp.HasStarted || !resp.IsFinished || resp.IsFetching {
		t.Errorf("Expected state flags preserved, got %+v", resp)
	}
	if resp.Error == nil || resp.Error.Code != results.ErrorCodeNoResult {
		t.Errorf("Expected NO_RESULT error, got %+v", resp.Error)
	}
	if resp.Error.SearchType != "all" {
		t.Errorf("Expected search type 'all', got %q", resp.Error.SearchType)
	}
}

func TestToFetchStateResponse_NoError(t *testing.T) {
	resp := ToFetchStateResponse(results.FetchState{HasStarted: true})

	if resp.Error != nil {
		t.Errorf("Expected nil error, got %+v", resp.Error)
	}
}

func TestToErrorInfoResponses_Empty(t *testing.T) {
	if out := ToErrorInfoResponses(nil); out != nil {
		t.Errorf("Expected nil for empty input, got %+v", out)
	}
}

func TestToMediaTypeCountResponses(t *testing.T) {
	counts := []results.MediaTypeCount{
		{MediaType: domain.MediaTypeImage, Count: 120},
		{MediaType: domain.MediaTypeAudio, Count: 7},
	}

	out := ToMediaTypeCountResponses(counts)

	if len(out) != 2 {
		t.Fatalf("Expected 2 counts, got %d", len(out))
	}
	if out[0].MediaType != "image" || out[0].Count != 120 {
		t.Errorf("Unexpected first count: %+v", out[0])
	}
}
