// ABOUTME: Search service queries the provider media API per media type
// ABOUTME: Maintains the results store's pages and fetch state, independent of the HTTP layer

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"openmedia-app-api/core/domain"
	domainerrors "openmedia-app-api/core/errors"
	"openmedia-app-api/core/interfaces"
	"openmedia-app-api/core/results"
	htmlutil "openmedia-app-api/pkg/utils/html"
)

const cacheTTL = 1 * time.Hour

// Params are the caller-supplied search parameters
type Params struct {
	// Query is the search term
	Query string

	// Page is the 1-based page to fetch; zero means 1
	Page int

	// ShouldPersist appends the fetched page to existing results
	// (pagination) instead of replacing them (new search)
	ShouldPersist bool
}

// SearchService performs provider searches and owns the results store's
// mutations. Each media type's state is only ever touched by that type's
// request, so concurrent all-media searches need no cross-type locking.
type SearchService struct {
	deps    interfaces.Dependencies
	store   *results.Store
	baseURL string

	mu      sync.Mutex
	cancels map[domain.MediaType]context.CancelFunc
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, store *results.Store, baseURL string) *SearchService {
	return &SearchService{
		deps:    deps,
		store:   store,
		baseURL: baseURL,
		cancels: make(map[domain.MediaType]context.CancelFunc),
	}
}

// Store exposes the results store for read-side consumers
func (s *SearchService) Store() *results.Store {
	return s.store
}

// validateQuery validates search query parameters
func (s *SearchService) validateQuery(query string) error {
	if query == "" {
		return &domainerrors.ValidationError{Field: "q", Message: "search query cannot be empty"}
	}

	if len(query) > 200 {
		return &domainerrors.ValidationError{Field: "q", Message: "search query cannot exceed 200 characters"}
	}

	return nil
}

// Search runs a search for the given search type. The pseudo-type "all"
// fans out one request per media type concurrently and waits for all of
// them; a concrete type issues a single request. Failures are recorded in
// the store's fetch state rather than returned, except for invalid input.
func (s *SearchService) Search(ctx context.Context, searchType domain.SearchType, params Params) error {
	if err := s.validateQuery(params.Query); err != nil {
		return err
	}

	if params.Page < 1 {
		params.Page = 1
	}

	if mediaType, ok := searchType.MediaType(); ok {
		s.searchMediaType(ctx, mediaType, params)
		return nil
	}

	var wg sync.WaitGroup
	for _, mediaType := range domain.SupportedMediaTypes() {
		wg.Add(1)
		go func(mediaType domain.MediaType) {
			defer wg.Done()
			s.searchMediaType(ctx, mediaType, params)
		}(mediaType)
	}
	wg.Wait()

	return nil
}

// searchMediaType fetches one page for one media type, transitioning the
// type's fetch state around the request. A new search supersedes any
// in-flight request for the same type: the old request's context is
// cancelled, and cancellation is re-checked before results are committed
// so a response that was already in flight does not overwrite the newer
// search's state.
func (s *SearchService) searchMediaType(ctx context.Context, mediaType domain.MediaType, params Params) {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	if prev := s.cancels[mediaType]; prev != nil {
		prev()
	}
	s.cancels[mediaType] = cancel
	s.mu.Unlock()
	defer cancel()

	s.store.StartFetching(mediaType)

	page, err := s.fetchPage(ctx, mediaType, params)
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		// A newer search owns this type's state now
		return
	}

	if err == nil && page.Count == 0 && params.Page == 1 {
		err = &domainerrors.NoResultError{MediaType: mediaType, Query: params.Query}
	}

	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Search request failed", map[string]interface{}{
				"media_type": string(mediaType),
				"query":      params.Query,
				"error":      err.Error(),
			})
		}
		s.store.EndFetching(mediaType, results.NewErrorInfo(err, domain.SearchType(mediaType)))
		return
	}

	s.store.SetMedia(results.SetMediaParams{
		MediaType:     mediaType,
		Items:         page.Items,
		ShouldPersist: params.ShouldPersist,
		Count:         page.Count,
		Page:          params.Page,
		PageCount:     page.PageCount,
	})
	s.store.EndFetching(mediaType, nil)
}

// fetchedPage is one decoded provider page
type fetchedPage struct {
	Items     []*domain.Media
	Count     int
	PageCount int
}

// fetchPage retrieves one result page from cache or the provider API
func (s *SearchService) fetchPage(ctx context.Context, mediaType domain.MediaType, params Params) (*fetchedPage, error) {
	cacheKey := fmt.Sprintf("search:%s:%s:%d", mediaType, params.Query, params.Page)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached fetchedPage
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	requestURL := s.requestURL(mediaType, params)
	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &domainerrors.NetworkError{MediaType: mediaType, Cause: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &domainerrors.HTTPStatusError{
			MediaType:  mediaType,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("search for %q", params.Query),
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &domainerrors.NetworkError{MediaType: mediaType, Cause: err}
	}

	page, err := decodeProviderPage(bodyBytes, mediaType)
	if err != nil {
		return nil, domainerrors.WrapError(err, "failed to parse provider response")
	}

	if s.deps.Cache != nil && len(page.Items) > 0 {
		if data, err := json.Marshal(page); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return page, nil
}

// requestURL builds the provider endpoint for one media type's search.
// Image searches hit /v1/images, audio searches /v1/audio.
func (s *SearchService) requestURL(mediaType domain.MediaType, params Params) string {
	endpoint := "images"
	if mediaType == domain.MediaTypeAudio {
		endpoint = "audio"
	}

	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("page", fmt.Sprintf("%d", params.Page))

	return fmt.Sprintf("%s/v1/%s?%s", s.baseURL, endpoint, query.Encode())
}

// providerMedia is the provider API's JSON shape for one record
type providerMedia struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	ForeignLandingURL string `json:"foreign_landing_url"`
	URL               string `json:"url"`
	Thumbnail         string `json:"thumbnail"`
	Creator           string `json:"creator"`
	CreatorURL        string `json:"creator_url"`
	License           string `json:"license"`
	LicenseVersion    string `json:"license_version"`
	LicenseURL        string `json:"license_url"`
	Attribution       string `json:"attribution"`
	Provider          string `json:"provider"`
	Source            string `json:"source"`
	Category          string `json:"category"`
	FileType          string `json:"filetype"`
	Duration          int    `json:"duration"`
}

// providerPage is the provider API's JSON shape for one result page
type providerPage struct {
	ResultCount int             `json:"result_count"`
	PageCount   int             `json:"page_count"`
	PageSize    int             `json:"page_size"`
	Page        int             `json:"page"`
	Results     []providerMedia `json:"results"`
}

// decodeProviderPage converts a provider response body to domain records.
// Provider titles occasionally carry markup; the display title is
// stripped while the original is kept for attribution.
func decodeProviderPage(body []byte, mediaType domain.MediaType) (*fetchedPage, error) {
	var decoded providerPage
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, err
	}

	page := &fetchedPage{
		Count:     decoded.ResultCount,
		PageCount: decoded.PageCount,
		Items:     make([]*domain.Media, 0, len(decoded.Results)),
	}

	for _, record := range decoded.Results {
		if record.ID == "" {
			continue
		}
		page.Items = append(page.Items, &domain.Media{
			ID:                record.ID,
			Title:             htmlutil.StripHTML(record.Title),
			OriginalTitle:     record.Title,
			ForeignLandingURL: record.ForeignLandingURL,
			URL:               record.URL,
			Thumbnail:         record.Thumbnail,
			Creator:           record.Creator,
			CreatorURL:        record.CreatorURL,
			License:           record.License,
			LicenseVersion:    record.LicenseVersion,
			LicenseURL:        record.LicenseURL,
			Attribution:       record.Attribution,
			Provider:          record.Provider,
			Source:            record.Source,
			MediaType:         mediaType,
			Category:          record.Category,
			FileType:          record.FileType,
			Duration:          record.Duration,
		})
	}

	return page, nil
}
