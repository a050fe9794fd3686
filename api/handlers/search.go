// ABOUTME: Search handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for media search and result management

package handlers

import (
	"context"
	"net/http"

	"openmedia-app-api/api/dto/mappers"
	"openmedia-app-api/api/dto/requests"
	"openmedia-app-api/api/dto/responses"
	coreconfig "openmedia-app-api/core/config"
	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/results"
	"openmedia-app-api/core/search"

	"github.com/danielgtaylor/huma/v2"
)

// SearchService defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, searchType domain.SearchType, params search.Params) error
	Store() *results.Store
}

// ColorService provides cached thumbnail colors
type ColorService interface {
	GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

// Enricher submits background enrichment for fetched results
type Enricher interface {
	EnrichResults(ctx context.Context, items []*domain.Media, cfg coreconfig.EnrichmentConfig)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService SearchService
	colorService  ColorService
	enricher      Enricher
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService, colorService ColorService, enricher Enricher) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		colorService:  colorService,
		enricher:      enricher,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search openly licensed media",
		Description: "Queries the provider for images, audio, or both, and returns the stored results with fetch state",
		Tags:        []string{"Search"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "clearResults",
		Method:      http.MethodDelete,
		Path:        "/results",
		Summary:     "Clear stored search results",
		Description: "Removes all stored result pages. Fetch states are preserved.",
		Tags:        []string{"Search"},
	}, h.ClearResults)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Query           string `query:"q" required:"true" doc:"Search term"`
	SearchType      string `query:"type" enum:"image,audio,all" default:"all" doc:"Media scope to search"`
	Page            int    `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	Persist         bool   `query:"persist" doc:"Append results to previous pages (load more)"`
	SkipEnrichment  bool   `query:"skip_enrichment" doc:"Skip background color and metadata extraction"`
	ExtractMetadata *bool  `query:"extract_metadata" doc:"Scrape landing pages for metadata (default true)"`
	ExtractColors   *bool  `query:"extract_colors" doc:"Extract dominant thumbnail colors (default true)"`
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	req := requests.SearchRequest{
		Query:      input.Query,
		SearchType: input.SearchType,
		Page:       input.Page,
		Persist:    input.Persist,
		EnrichmentOptions: &requests.EnrichmentOptions{
			ExtractMetadata: input.ExtractMetadata,
			ExtractColors:   input.ExtractColors,
		},
	}
	req.ApplyDefaults()

	searchType := domain.SearchType(req.SearchType)
	if !searchType.Valid() {
		return nil, huma.Error400BadRequest("unknown search type: " + req.SearchType)
	}

	params := search.Params{
		Query:         req.Query,
		Page:          req.Page,
		ShouldPersist: req.Persist,
	}

	if err := h.searchService.Search(ctx, searchType, params); err != nil {
		return nil, toHumaError(err)
	}

	store := h.searchService.Store()
	items := h.resultsFor(store, searchType)

	// Kick off enrichment in the background; colors land in cache for
	// subsequent requests
	if h.enricher != nil && !input.SkipEnrichment {
		cfg := coreconfig.NewEnrichmentConfig(
			coreconfig.WithMetadata(*req.EnrichmentOptions.ExtractMetadata),
			coreconfig.WithColors(*req.EnrichmentOptions.ExtractColors),
		)
		h.enricher.EnrichResults(context.WithoutCancel(ctx), items, cfg)
	}

	output := &SearchOutput{}
	output.Body = responses.SearchResponse{
		Query:       req.Query,
		SearchType:  string(searchType),
		Results:     mappers.ToMediaResponses(items, h.cachedColors(ctx, items)),
		ResultCount: store.ResultCount(searchType),
		Counts:      mappers.ToMediaTypeCountResponses(store.ResultCountsPerMediaType(searchType)),
		FetchState:  mappers.ToFetchStateResponse(store.FetchState(searchType)),
		FetchErrors: mappers.ToErrorInfoResponses(store.FetchErrors()),
	}
	return output, nil
}

// resultsFor returns the stored records for a search scope
func (h *SearchHandler) resultsFor(store *results.Store, searchType domain.SearchType) []*domain.Media {
	if mediaType, ok := searchType.MediaType(); ok {
		return store.Items(mediaType)
	}
	return store.AllMedia()
}

// cachedColors looks up already-computed thumbnail colors, never blocking
func (h *SearchHandler) cachedColors(ctx context.Context, items []*domain.Media) map[string]*domain.RGBColor {
	if h.colorService == nil {
		return nil
	}

	colors := make(map[string]*domain.RGBColor)
	for _, item := range items {
		if item == nil || item.Thumbnail == "" {
			continue
		}
		if _, seen := colors[item.Thumbnail]; seen {
			continue
		}
		if color, err := h.colorService.GetCachedColor(ctx, item.Thumbnail); err == nil && color != nil {
			colors[item.Thumbnail] = color
		}
	}
	return colors
}

// ClearResultsOutput defines the output for the ClearResults operation
type ClearResultsOutput struct {
	Body struct {
		Cleared bool `json:"cleared" doc:"Whether stored results were removed"`
	}
}

// ClearResults handles the DELETE /results endpoint
func (h *SearchHandler) ClearResults(ctx context.Context, _ *struct{}) (*ClearResultsOutput, error) {
	h.searchService.Store().ClearMedia()

	output := &ClearResultsOutput{}
	output.Body.Cleared = true
	return output, nil
}
