// ABOUTME: Per-media-type fetch state machine and compound all-media aggregation
// ABOUTME: Tracks in-flight, finished, and error status of search requests

package results

import (
	goerrors "errors"

	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/errors"
)

// Error codes carried by ErrorInfo
const (
	ErrorCodeNoResult = "NO_RESULT"
	ErrorCodeNetwork  = "NETWORK"
)

// ErrorInfo is the stored form of a failed search request
type ErrorInfo struct {
	// RequestKind identifies the request that failed (e.g. "search")
	RequestKind string `json:"requestKind"`

	// SearchType tags the error with the search scope it belongs to
	SearchType domain.SearchType `json:"searchType"`

	// StatusCode is set for HTTP status errors
	StatusCode int `json:"statusCode,omitempty"`

	// Code is a semantic error code (NO_RESULT, NETWORK)
	Code string `json:"code,omitempty"`

	// Message is a human-readable description
	Message string `json:"message,omitempty"`
}

// NewErrorInfo classifies a search error into its stored form
func NewErrorInfo(err error, searchType domain.SearchType) *ErrorInfo {
	if err == nil {
		return nil
	}

	info := &ErrorInfo{
		RequestKind: "search",
		SearchType:  searchType,
		Message:     err.Error(),
	}

	var statusErr *errors.HTTPStatusError
	var noResultErr *errors.NoResultError
	var netErr *errors.NetworkError

	switch {
	case goerrors.As(err, &statusErr):
		info.StatusCode = statusErr.StatusCode
	case goerrors.As(err, &noResultErr):
		info.Code = ErrorCodeNoResult
	case goerrors.As(err, &netErr):
		info.Code = ErrorCodeNetwork
	}

	return info
}

// FetchState is the per-media-type bookkeeping of search requests.
//
// The machine has four states: not-started, fetching, idle-with-results,
// and idle-with-error. Starting a fetch is always allowed, so re-searching
// re-enters fetching from any state.
type FetchState struct {
	HasStarted bool       `json:"hasStarted"`
	IsFetching bool       `json:"isFetching"`
	IsFinished bool       `json:"isFinished"`
	Error      *ErrorInfo `json:"fetchingError"`
}

// StartFetching transitions one media type's state into fetching,
// clearing any previous error.
func (s *Store) StartFetching(mediaType domain.MediaType) {
	s.mu.Lock()
	state := s.states[mediaType]
	if state == nil {
		s.mu.Unlock()
		return
	}
	state.HasStarted = true
	state.IsFetching = true
	state.Error = nil
	s.mu.Unlock()
	s.notify()
}

// EndFetching transitions one media type's state out of fetching,
// recording the error if the request failed. A type is finished when its
// request errored or when its last page has been fetched.
func (s *Store) EndFetching(mediaType domain.MediaType, errInfo *ErrorInfo) {
	s.mu.Lock()
	state := s.states[mediaType]
	if state == nil {
		s.mu.Unlock()
		return
	}

	state.IsFetching = false
	state.Error = errInfo

	if errInfo != nil {
		state.IsFinished = true
	} else {
		target := s.pages[mediaType]
		state.IsFinished = target.page >= target.pageCount
	}

	s.mu.Unlock()
	s.notify()
}

// FetchState returns the fetch state for a search type. A concrete media
// type's state passes through directly; the "all" pseudo-type aggregates:
// fetching if any type is fetching, finished when all are, started if any
// started, and a single representative error per aggregateError.
func (s *Store) FetchState(searchType domain.SearchType) FetchState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if mediaType, ok := searchType.MediaType(); ok {
		if state := s.states[mediaType]; state != nil {
			return *state
		}
		return FetchState{}
	}

	compound := FetchState{IsFinished: true}
	for _, mediaType := range domain.SupportedMediaTypes() {
		state := s.states[mediaType]
		compound.HasStarted = compound.HasStarted || state.HasStarted
		compound.IsFetching = compound.IsFetching || state.IsFetching
		compound.IsFinished = compound.IsFinished && state.IsFinished
	}
	compound.Error = s.aggregateError()

	return compound
}

// FetchErrors returns every per-type error, each tagged with its own
// media type. The compound state in FetchState collapses these into one
// representative error; callers that need the full picture use this.
func (s *Store) FetchErrors() []ErrorInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ErrorInfo
	for _, mediaType := range domain.SupportedMediaTypes() {
		if state := s.states[mediaType]; state.Error != nil {
			out = append(out, *state.Error)
		}
	}
	return out
}

// aggregateError collapses per-type errors into one error tagged with the
// all-media search type. When every type failed with NO_RESULT the
// compound error is a single NO_RESULT; otherwise the first error that is
// not NO_RESULT (by type iteration order) represents the whole set.
// Callers must hold at least a read lock.
func (s *Store) aggregateError() *ErrorInfo {
	var errs []*ErrorInfo
	allNoResult := true

	for _, mediaType := range domain.SupportedMediaTypes() {
		state := s.states[mediaType]
		if state.Error == nil {
			allNoResult = false
			continue
		}
		errs = append(errs, state.Error)
		if state.Error.Code != ErrorCodeNoResult {
			allNoResult = false
		}
	}

	if len(errs) == 0 {
		return nil
	}

	var chosen *ErrorInfo
	if allNoResult && len(errs) == len(domain.SupportedMediaTypes()) {
		chosen = errs[0]
	} else {
		for _, errInfo := range errs {
			if errInfo.Code != ErrorCodeNoResult {
				chosen = errInfo
				break
			}
		}
		if chosen == nil {
			chosen = errs[0]
		}
	}

	retagged := *chosen
	retagged.SearchType = domain.SearchTypeAll
	return &retagged
}
