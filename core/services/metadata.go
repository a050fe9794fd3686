// ABOUTME: Metadata extraction service for media landing pages
// ABOUTME: Uses colly to scrape Open Graph tags and related metadata from provider pages

package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"openmedia-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

const (
	collyUserAgent = "OpenMediaAPI/1.0 (landing page metadata)"
)

// MetadataService extracts metadata from media landing pages. Providers
// often expose richer descriptions and artwork there than in their APIs.
type MetadataService struct {
	deps interfaces.Dependencies
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies) *MetadataService {
	return &MetadataService{
		deps: deps,
	}
}

// ExtractMetadata extracts metadata from a single landing page URL
func (s *MetadataService) ExtractMetadata(ctx context.Context, targetURL string) (*interfaces.MetadataResult, error) {
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, metadataCacheKey(targetURL)); err == nil && data != nil {
			var result interfaces.MetadataResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	result := s.scrapeLandingPage(targetURL)

	if s.deps.Cache != nil && result != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, metadataCacheKey(targetURL), data, 24*time.Hour)
		}
	}

	return result, nil
}

// ExtractMetadataBatch extracts metadata for multiple URLs concurrently
func (s *MetadataService) ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*interfaces.MetadataResult {
	results := make(map[string]*interfaces.MetadataResult)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, 10)

	for _, u := range urls {
		wg.Add(1)
		go func(targetURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if result, err := s.ExtractMetadata(ctx, targetURL); err == nil && result != nil {
				mu.Lock()
				results[targetURL] = result
				mu.Unlock()
			}
		}(u)
	}

	wg.Wait()
	return results
}

// scrapeLandingPage performs the actual metadata extraction
func (s *MetadataService) scrapeLandingPage(targetURL string) *interfaces.MetadataResult {
	if targetURL == "" || targetURL == "http://" || targetURL == "://" || targetURL == "about:blank" {
		return nil
	}

	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(5*1024*1024), // 5MB limit
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(10 * time.Second)

	result := &interfaces.MetadataResult{
		Images: []string{},
	}

	// Open Graph and Twitter card tags
	c.OnHTML("meta", func(e *colly.HTMLElement) {
		property := e.Attr("property")
		content := e.Attr("content")
		name := e.Attr("name")

		if content == "" {
			return
		}

		if name == "theme-color" {
			result.ThemeColor = content
		}

		if name == "twitter:image" && result.Thumbnail == "" {
			result.Thumbnail = content
		}

		switch property {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = content
			}
		case "og:image":
			result.Images = append(result.Images, content)
			if result.Thumbnail == "" {
				result.Thumbnail = content
			}
		}
	})

	// Fallbacks from plain head elements
	c.OnHTML("head", func(e *colly.HTMLElement) {
		if result.Title == "" {
			if title := e.DOM.Find("title").First().Text(); title != "" {
				result.Title = strings.TrimSpace(title)
			}
		}

		if result.Description == "" {
			e.DOM.Find("meta[name='description']").Each(func(_ int, sel *goquery.Selection) {
				if content, exists := sel.Attr("content"); exists && content != "" {
					result.Description = content
				}
			})
		}

		e.DOM.Find("link[rel]").Each(func(_ int, sel *goquery.Selection) {
			rel := sel.AttrOr("rel", "")
			href := sel.AttrOr("href", "")
			for _, rv := range strings.Fields(rel) {
				if rv == "icon" || rv == "shortcut" || rv == "apple-touch-icon" {
					if href != "" && result.Favicon == "" {
						result.Favicon = e.Request.AbsoluteURL(href)
					}
				}
			}
		})
	})

	// JSON-LD, which some providers use for artwork metadata
	c.OnHTML("script[type='application/ld+json']", func(e *colly.HTMLElement) {
		var ldData map[string]interface{}
		if err := json.Unmarshal([]byte(e.Text), &ldData); err == nil {
			if result.Thumbnail == "" {
				if img, ok := ldData["image"].(string); ok {
					result.Thumbnail = img
				} else if imgObj, ok := ldData["image"].(map[string]interface{}); ok {
					if u, ok := imgObj["url"].(string); ok {
						result.Thumbnail = u
					}
				}
			}
		}
	})

	c.OnRequest(func(r *colly.Request) {
		if parsedURL, err := url.Parse(r.URL.String()); err == nil {
			result.Domain = parsedURL.Host
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		s.deps.Logger.Debug("Error visiting landing page for metadata", map[string]interface{}{
			"url":    targetURL,
			"error":  err.Error(),
			"status": r.StatusCode,
		})
	})

	if err := c.Visit(targetURL); err != nil {
		s.deps.Logger.Debug("Failed to visit landing page for metadata extraction", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return result
	}

	// No artwork in meta tags; fall back to the first significant inline image
	if result.Thumbnail == "" && len(result.Images) == 0 {
		c.OnHTML("img", func(e *colly.HTMLElement) {
			src := e.Attr("src")
			if src != "" && isSignificantImage(e) {
				absURL := e.Request.AbsoluteURL(src)
				result.Images = append(result.Images, absURL)
				if result.Thumbnail == "" {
					result.Thumbnail = absURL
				}
			}
		})
		_ = c.Visit(targetURL)
	}

	return result
}

// isSignificantImage checks if an image is likely to be content (not logo/icon)
func isSignificantImage(e *colly.HTMLElement) bool {
	width := e.Attr("width")
	height := e.Attr("height")

	if width != "" && height != "" {
		w, _ := strconv.Atoi(width)
		h, _ := strconv.Atoi(height)
		if w < 200 || h < 200 {
			return false
		}
	}

	class := strings.ToLower(e.Attr("class"))
	id := strings.ToLower(e.Attr("id"))
	alt := strings.ToLower(e.Attr("alt"))

	// Skip logos, icons, avatars
	skipPatterns := []string{"logo", "icon", "avatar", "profile", "user", "author"}
	for _, pattern := range skipPatterns {
		if strings.Contains(class, pattern) || strings.Contains(id, pattern) || strings.Contains(alt, pattern) {
			return false
		}
	}

	return true
}

// metadataCacheKey builds the cache key for a landing page metadata entry
func metadataCacheKey(targetURL string) string {
	return "metadata:landing:" + targetURL
}
