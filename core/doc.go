// Package core contains the business logic for the OpenMedia API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Media, SearchType, RGBColor)
// - search: Provider search service with per-type fetch goroutines
// - results: Result store with interleaving and fetch state tracking
// - attribution: Creative Commons attribution string generation
// - license: License metadata, names, elements, and icon URLs
// - i18n: Message catalogue and placeholder substitution
// - services: Thumbnail color and landing page metadata enrichment
// - workers: Background worker pool for enrichment jobs
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies in domain logic
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "openmedia-app-api/core/interfaces"
//	    "openmedia-app-api/core/results"
//	    "openmedia-app-api/core/search"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the store and service
//	store := results.NewStore()
//	searchService := search.NewSearchService(deps, store, "https://api.openverse.org")
//
//	// Run a search
//	err := searchService.Search(ctx, domain.SearchTypeAll, search.Params{
//	    Query: "sunset",
//	    Page:  1,
//	})
package core
