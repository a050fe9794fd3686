// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"
	"time"

	"openmedia-app-api/core/domain"
)

// ThumbnailColorService extracts colors from result thumbnails
type ThumbnailColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
	ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor
	GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

// MetadataResult contains extracted metadata from a media landing page
type MetadataResult struct {
	Title       string
	Description string
	Thumbnail   string // Primary image URL
	Images      []string
	ThemeColor  string
	Domain      string
	Favicon     string
}

// MetadataService extracts metadata from media landing pages
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
	ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*MetadataResult
}

// EnrichmentService combines thumbnail color and landing page metadata
// extraction behind a single contract used by the background workers
type EnrichmentService interface {
	ThumbnailColorService
	MetadataService
}

// DocumentStore persists structured documents, for example enriched media
// metadata in Redis via ReJSON
type DocumentStore interface {
	SetDocument(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetDocument(ctx context.Context, key string, dest interface{}) error
}
