// ABOUTME: Thumbnail color extraction service for media result thumbnails
// ABOUTME: Uses K-means clustering to find the most prominent color in artwork

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/interfaces"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support
)

const (
	defaultColorValue = 128
	httpTimeout       = 10 * time.Second
	imageUserAgent    = "OpenMediaAPI/1.0 (thumbnail color extraction)"
)

// ThumbnailColorService extracts prominent colors from result thumbnails.
// Colors are computed in the background and served from cache so search
// responses never block on image downloads.
type ThumbnailColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
	cacheTTL   time.Duration
}

// NewThumbnailColorService creates a new thumbnail color service
func NewThumbnailColorService(deps interfaces.Dependencies) *ThumbnailColorService {
	return &ThumbnailColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		cacheTTL: 24 * time.Hour,
	}
}

// ExtractColor extracts the prominent color from a thumbnail URL
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	// Check cache first
	if cached := s.cachedColor(ctx, imageURL); cached != nil {
		return cached, nil
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract color from thumbnail", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}

	if color == nil {
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, colorCacheKey(imageURL), []byte(cacheData), s.cacheTTL)
	}

	return color, nil
}

// GetCachedColor retrieves a color from cache without computing it
func (s *ThumbnailColorService) GetCachedColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image URL")
	}

	if color := s.cachedColor(ctx, imageURL); color != nil {
		return color, nil
	}

	return nil, fmt.Errorf("color not found in cache")
}

// ExtractColorBatch extracts colors for multiple thumbnails concurrently
func (s *ThumbnailColorService) ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor {
	results := make(map[string]*domain.RGBColor)
	var resultsMutex sync.Mutex

	s.deps.Logger.Debug("Starting batch color extraction", map[string]interface{}{
		"count": len(imageURLs),
	})

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 5) // Background work, keep concurrency modest

	for _, u := range imageURLs {
		wg.Add(1)
		go func(imageURL string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()

				color, err := s.ExtractColor(ctx, imageURL)
				if err != nil {
					s.deps.Logger.Debug("Failed to extract color in batch", map[string]interface{}{
						"url":   imageURL,
						"error": err.Error(),
					})
					return
				}

				resultsMutex.Lock()
				results[imageURL] = color
				resultsMutex.Unlock()

			case <-ctx.Done():
				return
			}
		}(u)
	}

	wg.Wait()

	s.deps.Logger.Debug("Completed batch color extraction", map[string]interface{}{
		"requested": len(imageURLs),
		"extracted": len(results),
	})

	return results
}

// cachedColor parses a cached "R,G,B" entry, returning nil on miss
func (s *ThumbnailColorService) cachedColor(ctx context.Context, imageURL string) *domain.RGBColor {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, colorCacheKey(imageURL))
	if err != nil || data == nil {
		return nil
	}

	var color domain.RGBColor
	if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err != nil {
		return nil
	}
	return &color
}

// extractColorFromURL downloads and extracts color from a thumbnail
func (s *ThumbnailColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// The clustering library panics on some malformed images
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG thumbnails can't be decoded as raster images
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", imageUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	// Masks filter out backgrounds; retry without them if nothing is found
	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	if err != nil || len(colors) == 0 {
		s.deps.Logger.Debug("Retrying color extraction without masks", map[string]interface{}{
			"url": imageURL,
		})

		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)

		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the default gray color
func (s *ThumbnailColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}

// colorCacheKey builds the cache key for a thumbnail color entry
func colorCacheKey(imageURL string) string {
	return "color:thumbnail:" + imageURL
}
