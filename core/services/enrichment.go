// ABOUTME: Media enrichment service combining metadata and thumbnail color extraction
// ABOUTME: Optionally persists enriched metadata as JSON documents

package services

import (
	"context"
	"time"

	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/interfaces"
)

// MediaEnrichmentService combines metadata and color extraction for
// search results. It implements interfaces.EnrichmentService.
type MediaEnrichmentService struct {
	metadata       *MetadataService
	thumbnailColor *ThumbnailColorService
	documents      interfaces.DocumentStore
	documentTTL    time.Duration
}

// NewMediaEnrichmentService creates a new unified enrichment service
func NewMediaEnrichmentService(deps interfaces.Dependencies, colorCacheTTL time.Duration) *MediaEnrichmentService {
	thumbnailService := NewThumbnailColorService(deps)
	if colorCacheTTL > 0 {
		thumbnailService.cacheTTL = colorCacheTTL
	}

	return &MediaEnrichmentService{
		metadata:       NewMetadataService(deps),
		thumbnailColor: thumbnailService,
		documentTTL:    7 * 24 * time.Hour,
	}
}

// WithDocumentStore enables persisting enriched metadata as JSON documents
func (s *MediaEnrichmentService) WithDocumentStore(store interfaces.DocumentStore) *MediaEnrichmentService {
	s.documents = store
	return s
}

// ExtractMetadata extracts metadata from a landing page URL
func (s *MediaEnrichmentService) ExtractMetadata(ctx context.Context, url string) (*interfaces.MetadataResult, error) {
	result, err := s.metadata.ExtractMetadata(ctx, url)
	if err == nil && result != nil && s.documents != nil {
		_ = s.documents.SetDocument(ctx, url, result, s.documentTTL)
	}
	return result, err
}

// ExtractMetadataBatch extracts metadata for multiple landing pages
func (s *MediaEnrichmentService) ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*interfaces.MetadataResult {
	results := s.metadata.ExtractMetadataBatch(ctx, urls)
	if s.documents != nil {
		for url, result := range results {
			_ = s.documents.SetDocument(ctx, url, result, s.documentTTL)
		}
	}
	return results
}

// ExtractColor extracts the prominent color from a thumbnail URL
func (s *MediaEnrichmentService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	return s.thumbnailColor.ExtractColor(ctx, imageURL)
}

// ExtractColorBatch extracts colors for multiple thumbnails
func (s *MediaEnrichmentService) ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	return s.thumbnailColor.ExtractColorBatch(ctx, imageURLs)
}

// GetCachedColor retrieves a cached color without computing
func (s *MediaEnrichmentService) GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	return s.thumbnailColor.GetCachedColor(ctx, imageURL)
}

// ThumbnailURLs collects the thumbnail URLs of a result batch
func ThumbnailURLs(items []*domain.Media) []string {
	urls := make([]string, 0, len(items))
	for _, item := range items {
		if item != nil && item.Thumbnail != "" {
			urls = append(urls, item.Thumbnail)
		}
	}
	return urls
}

// LandingURLs collects the foreign landing page URLs of a result batch
func LandingURLs(items []*domain.Media) []string {
	urls := make([]string, 0, len(items))
	for _, item := range items {
		if item != nil && item.ForeignLandingURL != "" {
			urls = append(urls, item.ForeignLandingURL)
		}
	}
	return urls
}
