package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"openmedia-app-api/core/domain"
	domainerrors "openmedia-app-api/core/errors"
	"openmedia-app-api/core/interfaces"
	"openmedia-app-api/core/results"
)

const imagePageBody = `{
	"result_count": 2,
	"page_count": 1,
	"page": 1,
	"results": [
		{"id": "11111111-1111-4111-8111-111111111111", "title": "Cat <b>drawing</b>", "license": "by", "license_version": "4.0", "creator": "Alice"},
		{"id": "22222222-2222-4222-8222-222222222222", "title": "Another cat", "license": "cc0", "license_version": "1.0"}
	]
}`

const emptyPageBody = `{"result_count": 0, "page_count": 0, "page": 1, "results": []}`

func newTestService(client interfaces.HTTPClient, cache interfaces.Cache) (*SearchService, *results.Store) {
	store := results.NewStore()
	deps := interfaces.Dependencies{
		HTTPClient: client,
		Cache:      cache,
		Logger:     &mockLogger{},
	}
	return NewSearchService(deps, store, "https://api.example.org"), store
}

func TestSearch_EmptyQueryRejected(t *testing.T) {
	service, _ := newTestService(&mockHTTPClient{}, nil)

	err := service.Search(context.Background(), domain.SearchTypeImage, Params{Query: ""})

	if !domainerrors.IsValidation(err) {
		t.Errorf("Search should reject empty queries with a ValidationError, got %v", err)
	}
}

func TestSearch_PopulatesStoreFromProviderResponse(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if !strings.Contains(url, "/v1/images?") {
				t.Errorf("image search hit unexpected URL %s", url)
			}
			if !strings.Contains(url, "q=cats") {
				t.Errorf("query not propagated, URL %s", url)
			}
			return &mockResponse{statusCode: 200, body: imagePageBody}, nil
		},
	}
	service, store := newTestService(client, nil)

	err := service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "cats"})
	if err != nil {
		t.Fatalf("Search returned %v", err)
	}

	items := store.Items(domain.MediaTypeImage)
	if len(items) != 2 {
		t.Fatalf("store holds %d items, want 2", len(items))
	}

	// Display titles are stripped of markup, originals preserved
	if items[0].Title != "Cat drawing" {
		t.Errorf("Title = %q, want stripped markup", items[0].Title)
	}
	if items[0].OriginalTitle != "Cat <b>drawing</b>" {
		t.Errorf("OriginalTitle = %q, want provider value", items[0].OriginalTitle)
	}
	if items[0].MediaType != domain.MediaTypeImage {
		t.Errorf("MediaType = %s, want image", items[0].MediaType)
	}

	state := store.FetchState(domain.SearchTypeImage)
	if !state.IsFinished || state.Error != nil {
		t.Errorf("fetch state after success = %+v", state)
	}
	if store.ResultCount(domain.SearchTypeImage) != 2 {
		t.Errorf("ResultCount = %d, want 2", store.ResultCount(domain.SearchTypeImage))
	}
}

func TestSearch_StatusErrorRecordedInFetchState(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 503, body: "upstream down"}, nil
		},
	}
	service, store := newTestService(client, nil)

	_ = service.Search(context.Background(), domain.SearchTypeAudio, Params{Query: "birds"})

	state := store.FetchState(domain.SearchTypeAudio)
	if state.Error == nil || state.Error.StatusCode != 503 {
		t.Errorf("status error should be recorded, got %+v", state.Error)
	}
	if !state.IsFinished {
		t.Error("errored search should finish the type")
	}
}

func TestSearch_NetworkErrorRecordedInFetchState(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	service, store := newTestService(client, nil)

	_ = service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "cats"})

	state := store.FetchState(domain.SearchTypeImage)
	if state.Error == nil || state.Error.Code != results.ErrorCodeNetwork {
		t.Errorf("network error should be recorded, got %+v", state.Error)
	}
}

func TestSearch_EmptyFirstPageIsNoResult(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: emptyPageBody}, nil
		},
	}
	service, store := newTestService(client, nil)

	_ = service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "xyzzy"})

	state := store.FetchState(domain.SearchTypeImage)
	if state.Error == nil || state.Error.Code != results.ErrorCodeNoResult {
		t.Errorf("empty first page should record NO_RESULT, got %+v", state.Error)
	}
}

func TestSearch_AllFansOutPerMediaType(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}

	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			mu.Lock()
			if strings.Contains(url, "/v1/images?") {
				seen["image"] = true
			}
			if strings.Contains(url, "/v1/audio?") {
				seen["audio"] = true
			}
			mu.Unlock()

			body := imagePageBody
			if strings.Contains(url, "/v1/audio?") {
				body = `{"result_count": 1, "page_count": 1, "page": 1, "results": [
					{"id": "33333333-3333-4333-8333-333333333333", "title": "Birdsong", "license": "by", "license_version": "2.0", "duration": 74}
				]}`
			}
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	service, store := newTestService(client, nil)

	err := service.Search(context.Background(), domain.SearchTypeAll, Params{Query: "nature"})
	if err != nil {
		t.Fatalf("Search returned %v", err)
	}

	if !seen["image"] || !seen["audio"] {
		t.Errorf("all-media search should hit both endpoints, saw %v", seen)
	}

	compound := store.FetchState(domain.SearchTypeAll)
	if !compound.IsFinished || compound.Error != nil {
		t.Errorf("compound fetch state = %+v", compound)
	}
	if store.ResultCount(domain.SearchTypeAll) != 3 {
		t.Errorf("ResultCount(all) = %d, want 3", store.ResultCount(domain.SearchTypeAll))
	}
}

func TestSearch_ChecksCacheFirst(t *testing.T) {
	httpCalled := false
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			httpCalled = true
			return nil, errors.New("should not be called")
		},
	}

	cached := `{"Items":[{"ID":"11111111-1111-4111-8111-111111111111","License":"by","MediaType":"image"}],"Count":1,"PageCount":1}`
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			expected := "search:image:cats:1"
			if key != expected {
				t.Errorf("cache key = %q, want %q", key, expected)
			}
			return []byte(cached), nil
		},
	}

	service, store := newTestService(client, cache)

	_ = service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "cats"})

	if httpCalled {
		t.Error("cache hit should skip the HTTP client")
	}
	if len(store.Items(domain.MediaTypeImage)) != 1 {
		t.Error("cached page should populate the store")
	}
}

func TestSearch_PersistAppendsAcrossPages(t *testing.T) {
	pageOne := `{"result_count": 3, "page_count": 2, "page": 1, "results": [
		{"id": "aaaa1111-0000-4000-8000-000000000001", "title": "one", "license": "by"},
		{"id": "aaaa1111-0000-4000-8000-000000000002", "title": "two", "license": "by"}
	]}`
	pageTwo := `{"result_count": 3, "page_count": 2, "page": 2, "results": [
		{"id": "aaaa1111-0000-4000-8000-000000000003", "title": "three", "license": "by"}
	]}`

	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "page=2") {
				return &mockResponse{statusCode: 200, body: pageTwo}, nil
			}
			return &mockResponse{statusCode: 200, body: pageOne}, nil
		},
	}
	service, store := newTestService(client, nil)

	_ = service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "cats"})

	state := store.FetchState(domain.SearchTypeImage)
	if state.IsFinished {
		t.Error("a type with more pages left is not finished")
	}

	_ = service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "cats", Page: 2, ShouldPersist: true})

	if got := len(store.Items(domain.MediaTypeImage)); got != 3 {
		t.Errorf("persisted pagination should accumulate items, got %d", got)
	}
	if !store.FetchState(domain.SearchTypeImage).IsFinished {
		t.Error("last page should finish the type")
	}
}

func TestSearch_SupersededResponseNotCommitted(t *testing.T) {
	newerPageBody := `{"result_count": 1, "page_count": 1, "page": 1, "results": [
		{"id": "bbbb2222-0000-4000-8000-000000000001", "title": "dog", "license": "by"}
	]}`

	firstInFlight := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()

			if first {
				close(firstInFlight)
				// Hold the stale response until the newer search has
				// fully committed, ignoring the cancelled context
				<-release
				return &mockResponse{statusCode: 200, body: imagePageBody}, nil
			}
			return &mockResponse{statusCode: 200, body: newerPageBody}, nil
		},
	}
	service, store := newTestService(client, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "cats"})
	}()

	<-firstInFlight
	if err := service.Search(context.Background(), domain.SearchTypeImage, Params{Query: "dogs"}); err != nil {
		t.Fatalf("superseding search returned %v", err)
	}
	close(release)
	<-done

	items := store.Items(domain.MediaTypeImage)
	if len(items) != 1 || items[0].Title != "dog" {
		t.Fatalf("stale response overwrote the newer search, store holds %d items", len(items))
	}
	if store.ResultCount(domain.SearchTypeImage) != 1 {
		t.Errorf("ResultCount = %d, want the newer search's count", store.ResultCount(domain.SearchTypeImage))
	}
}
