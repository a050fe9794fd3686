// ABOUTME: Results store owns per-media-type result pages and fetch state
// ABOUTME: Provides interleaved all-media views and compound fetch-state aggregation

package results

import (
	"sync"

	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/errors"
)

// page holds one media type's fetched results. Item order is insertion
// order, which is the provider's relevance order.
type page struct {
	ids       []string
	items     map[string]*domain.Media
	count     int
	page      int
	pageCount int
}

func newPage() *page {
	return &page{items: make(map[string]*domain.Media)}
}

// SetMediaParams carries one fetched page of results into the store
type SetMediaParams struct {
	// MediaType is the type the page belongs to
	MediaType domain.MediaType

	// Items are the fetched records in relevance order
	Items []*domain.Media

	// ShouldPersist merges the page into existing results (pagination)
	// instead of replacing them (new search)
	ShouldPersist bool

	// Count is the server-reported total result count
	Count int

	// Page is the fetched page number; defaults to 1
	Page int

	// PageCount is the server-reported total page count
	PageCount int
}

// Store owns one results page and one fetch state per supported media
// type. It is created per server (no ambient singleton) and is safe for
// concurrent use: each media type's search goroutine mutates only its own
// type's state, and derived views are recomputed on read.
type Store struct {
	mu     sync.RWMutex
	pages  map[domain.MediaType]*page
	states map[domain.MediaType]*FetchState

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// NewStore creates a store with empty pages and not-started fetch states
func NewStore() *Store {
	s := &Store{
		pages:       make(map[domain.MediaType]*page),
		states:      make(map[domain.MediaType]*FetchState),
		subscribers: make(map[int]func()),
	}

	for _, mediaType := range domain.SupportedMediaTypes() {
		s.pages[mediaType] = newPage()
		s.states[mediaType] = &FetchState{}
	}

	return s
}

// Subscribe registers a callback invoked after every store mutation and
// returns a function that removes the subscription. UI layers observe
// the store through this instead of implicit reactivity.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

// notify invokes subscribers outside the state lock
func (s *Store) notify() {
	s.subMu.Lock()
	callbacks := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// SetMedia merges or replaces one media type's results with a fetched
// page. Count, page, and pageCount are always overwritten; page defaults
// to 1 when unset.
func (s *Store) SetMedia(params SetMediaParams) {
	s.mu.Lock()

	target := s.pages[params.MediaType]
	if target == nil {
		s.mu.Unlock()
		return
	}

	if !params.ShouldPersist {
		target.ids = nil
		target.items = make(map[string]*domain.Media)
	}

	for _, item := range params.Items {
		if item == nil || item.ID == "" {
			continue
		}
		if _, exists := target.items[item.ID]; !exists {
			target.ids = append(target.ids, item.ID)
		}
		target.items[item.ID] = item
	}

	target.count = params.Count
	if params.Page == 0 {
		target.page = 1
	} else {
		target.page = params.Page
	}
	target.pageCount = params.PageCount

	s.mu.Unlock()
	s.notify()
}

// ClearMedia resets every media type's results page to its initial empty
// state, independent of the active search type. Fetch states are left
// untouched.
func (s *Store) ClearMedia() {
	s.mu.Lock()
	for _, mediaType := range domain.SupportedMediaTypes() {
		s.pages[mediaType] = newPage()
	}
	s.mu.Unlock()
	s.notify()
}

// GetItemByID returns the stored item for a media type, or a NotFoundError
func (s *Store) GetItemByID(mediaType domain.MediaType, id string) (*domain.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := s.pages[mediaType]
	if target != nil {
		if item, ok := target.items[id]; ok {
			return item, nil
		}
	}

	return nil, &errors.NotFoundError{Resource: string(mediaType), ID: id}
}

// Items returns one media type's items in relevance order
func (s *Store) Items(mediaType domain.MediaType) []*domain.Media {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := s.pages[mediaType]
	if target == nil {
		return nil
	}

	out := make([]*domain.Media, 0, len(target.ids))
	for _, id := range target.ids {
		out = append(out, target.items[id])
	}
	return out
}

// AllMedia produces the interleaved ordered sequence across media types
// for all-media views. The walk is a serpentine round-robin: one item per
// type per round, with the type order reversed on every other round, so
// with four images and two audio items the sequence is image1, audio1,
// audio2, image2, image3, image4. Exhausted types are skipped and each
// type's internal relevance order is preserved. The order is fully
// deterministic.
func (s *Store) AllMedia() []*domain.Media {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := domain.SupportedMediaTypes()
	reversed := make([]domain.MediaType, len(types))
	for i, mediaType := range types {
		reversed[len(types)-1-i] = mediaType
	}

	var out []*domain.Media
	for round := 0; ; round++ {
		order := types
		if round%2 == 1 {
			order = reversed
		}

		emitted := false
		for _, mediaType := range order {
			target := s.pages[mediaType]
			if round < len(target.ids) {
				out = append(out, target.items[target.ids[round]])
				emitted = true
			}
		}

		if !emitted {
			break
		}
	}

	return out
}

// MediaTypeCount pairs a media type with its server-reported total
type MediaTypeCount struct {
	MediaType domain.MediaType
	Count     int
}

// ResultCount returns the total result count for the active search type:
// the sum across types for "all", or the single type's count otherwise.
func (s *Store) ResultCount(searchType domain.SearchType) int {
	total := 0
	for _, entry := range s.ResultCountsPerMediaType(searchType) {
		total += entry.Count
	}
	return total
}

// ResultCountsPerMediaType returns per-type counts filtered by the active
// search type, in the fixed media type iteration order.
func (s *Store) ResultCountsPerMediaType(searchType domain.SearchType) []MediaTypeCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []MediaTypeCount
	for _, mediaType := range domain.SupportedMediaTypes() {
		if single, ok := searchType.MediaType(); ok && single != mediaType {
			continue
		}
		out = append(out, MediaTypeCount{MediaType: mediaType, Count: s.pages[mediaType].count})
	}
	return out
}
