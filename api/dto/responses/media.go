// ABOUTME: Response DTOs for media search API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// MediaResponse represents a single media record in API responses
type MediaResponse struct {
	ID                string         `json:"id" doc:"Provider identifier for the record"`
	Title             string         `json:"title" doc:"Sanitized title"`
	OriginalTitle     string         `json:"original_title,omitempty" doc:"Title as supplied by the provider"`
	ForeignLandingURL string         `json:"foreign_landing_url,omitempty" doc:"Landing page on the source site"`
	URL               string         `json:"url" doc:"Direct media file URL"`
	Thumbnail         string         `json:"thumbnail,omitempty" doc:"Thumbnail or artwork URL"`
	Creator           string         `json:"creator,omitempty" doc:"Creator name"`
	CreatorURL        string         `json:"creator_url,omitempty" doc:"Creator profile URL"`
	License           string         `json:"license" doc:"License code, e.g. by-nc-sa"`
	LicenseVersion    string         `json:"license_version,omitempty" doc:"License version, e.g. 4.0"`
	LicenseURL        string         `json:"license_url,omitempty" doc:"License deed URL"`
	Attribution       string         `json:"attribution,omitempty" doc:"Plain text attribution string"`
	Provider          string         `json:"provider,omitempty" doc:"Provider slug"`
	Source            string         `json:"source,omitempty" doc:"Source slug"`
	MediaType         string         `json:"media_type" doc:"image or audio"`
	Category          string         `json:"category,omitempty" doc:"Provider category"`
	FileType          string         `json:"filetype,omitempty" doc:"File type, e.g. jpg, mp3"`
	Duration          string         `json:"duration,omitempty" doc:"Formatted track length (audio only)"`
	DurationSeconds   int            `json:"duration_seconds,omitempty" doc:"Track length in seconds (audio only)"`
	ThumbnailColor    *ColorResponse `json:"thumbnail_color,omitempty" doc:"Dominant thumbnail color, if computed"`
}

// ColorResponse represents an RGB color
type ColorResponse struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ErrorInfoResponse describes a failed provider fetch
type ErrorInfoResponse struct {
	RequestKind string `json:"request_kind" doc:"Request that failed, e.g. search"`
	SearchType  string `json:"search_type" doc:"Search scope the error belongs to"`
	StatusCode  int    `json:"status_code,omitempty" doc:"Provider HTTP status, if any"`
	Code        string `json:"code" doc:"Error code, e.g. NO_RESULT or NETWORK"`
	Message     string `json:"message,omitempty" doc:"Human readable details"`
}

// FetchStateResponse describes the fetch lifecycle for a search scope
type FetchStateResponse struct {
	HasStarted bool               `json:"has_started" doc:"A fetch has been initiated"`
	IsFetching bool               `json:"is_fetching" doc:"A fetch is currently in flight"`
	IsFinished bool               `json:"is_finished" doc:"No further pages can be fetched"`
	Error      *ErrorInfoResponse `json:"error,omitempty" doc:"Error from the most recent fetch"`
}

// MediaTypeCountResponse holds the result count for one media type
type MediaTypeCountResponse struct {
	MediaType string `json:"media_type"`
	Count     int    `json:"count"`
}

// SearchResponse represents the response for a media search
type SearchResponse struct {
	Query       string                   `json:"query" doc:"Search term"`
	SearchType  string                   `json:"search_type" doc:"Requested scope"`
	Results     []MediaResponse          `json:"results" doc:"Result records, interleaved for the all scope"`
	ResultCount int                      `json:"result_count" doc:"Total matching records reported by the provider"`
	Counts      []MediaTypeCountResponse `json:"counts" doc:"Per-media-type result counts"`
	FetchState  FetchStateResponse       `json:"fetch_state" doc:"Aggregated fetch state for the requested scope"`
	FetchErrors []ErrorInfoResponse      `json:"fetch_errors,omitempty" doc:"Individual per-media-type fetch errors"`
}

// AttributionResponse represents a generated attribution string
type AttributionResponse struct {
	ID          string `json:"id" doc:"Provider identifier for the record"`
	MediaType   string `json:"media_type" doc:"image or audio"`
	Format      string `json:"format" doc:"html, plain, or xml"`
	Attribution string `json:"attribution" doc:"Generated attribution markup or text"`
}
