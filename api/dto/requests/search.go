// ABOUTME: Request DTOs for search-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// SearchRequest represents the query parameters of a media search
type SearchRequest struct {
	// Query is the search term
	Query string `json:"q" doc:"Search term"`

	// SearchType selects the media scope: image, audio, or all
	SearchType string `json:"type,omitempty" enum:"image,audio,all" default:"all" doc:"Media scope to search"`

	// Page is the 1-based provider page to fetch
	Page int `json:"page,omitempty" minimum:"1" default:"1" doc:"Page number (1-based)"`

	// Persist appends the fetched page to existing results instead of
	// replacing them
	Persist bool `json:"persist,omitempty" doc:"Append results to previous pages (load more)"`

	// EnrichmentOptions controls which enrichment features are enabled
	EnrichmentOptions *EnrichmentOptions `json:"enrichment,omitempty" doc:"Optional enrichment configuration"`
}

// EnrichmentOptions controls which optional enrichment features are enabled
type EnrichmentOptions struct {
	// ExtractMetadata enables landing page metadata extraction (default: true)
	ExtractMetadata *bool `json:"extract_metadata,omitempty" default:"true" doc:"Scrape landing pages for metadata"`

	// ExtractColors enables color extraction from thumbnails (default: true)
	ExtractColors *bool `json:"extract_colors,omitempty" default:"true" doc:"Extract dominant colors from thumbnails"`
}

// ApplyDefaults sets default values for optional fields
func (r *SearchRequest) ApplyDefaults() {
	if r.SearchType == "" {
		r.SearchType = "all"
	}
	if r.Page == 0 {
		r.Page = 1
	}

	if r.EnrichmentOptions == nil {
		r.EnrichmentOptions = &EnrichmentOptions{}
	}
	if r.EnrichmentOptions.ExtractMetadata == nil {
		enabled := true
		r.EnrichmentOptions.ExtractMetadata = &enabled
	}
	if r.EnrichmentOptions.ExtractColors == nil {
		enabled := true
		r.EnrichmentOptions.ExtractColors = &enabled
	}
}
