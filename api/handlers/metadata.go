// ABOUTME: Metadata handler exposing landing page metadata extraction
// ABOUTME: Returns Open Graph data, artwork, and site info for media landing pages

package handlers

import (
	"context"
	"net/http"

	"openmedia-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// MetadataHandler handles landing page metadata extraction
type MetadataHandler struct {
	metadataService interfaces.MetadataService
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(metadataService interfaces.MetadataService) *MetadataHandler {
	return &MetadataHandler{
		metadataService: metadataService,
	}
}

// RegisterRoutes registers metadata routes
func (h *MetadataHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractMetadata",
		Method:      http.MethodPost,
		Path:        "/metadata",
		Summary:     "Extract metadata from landing pages",
		Description: "Extracts Open Graph tags, artwork, and site info from media landing page URLs",
		Tags:        []string{"Metadata"},
	}, h.ExtractMetadata)
}

// MetadataInput defines the input for metadata extraction
type MetadataInput struct {
	Body struct {
		URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"Landing page URLs to extract metadata from"`
	}
}

// MetadataItem represents extracted metadata for one URL
type MetadataItem struct {
	URL         string   `json:"url" doc:"The landing page URL"`
	Title       string   `json:"title,omitempty" doc:"Page title"`
	Description string   `json:"description,omitempty" doc:"Page description"`
	Thumbnail   string   `json:"thumbnail,omitempty" doc:"Primary artwork URL"`
	Images      []string `json:"images,omitempty" doc:"All discovered artwork URLs"`
	ThemeColor  string   `json:"theme_color,omitempty" doc:"Declared theme color"`
	Domain      string   `json:"domain,omitempty" doc:"Page host"`
	Favicon     string   `json:"favicon,omitempty" doc:"Favicon URL"`
}

// MetadataOutput defines the output for metadata extraction
type MetadataOutput struct {
	Body struct {
		Metadata []MetadataItem `json:"metadata" doc:"Extracted metadata for each URL"`
	}
}

// ExtractMetadata handles the POST /metadata endpoint
func (h *MetadataHandler) ExtractMetadata(ctx context.Context, input *MetadataInput) (*MetadataOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	extracted := h.metadataService.ExtractMetadataBatch(ctx, input.Body.URLs)

	// Preserve request order; URLs that failed get an empty item
	items := make([]MetadataItem, 0, len(input.Body.URLs))
	for _, u := range input.Body.URLs {
		item := MetadataItem{URL: u}
		if result := extracted[u]; result != nil {
			item.Title = result.Title
			item.Description = result.Description
			item.Thumbnail = result.Thumbnail
			item.Images = result.Images
			item.ThemeColor = result.ThemeColor
			item.Domain = result.Domain
			item.Favicon = result.Favicon
		}
		items = append(items, item)
	}

	output := &MetadataOutput{}
	output.Body.Metadata = items
	return output, nil
}
