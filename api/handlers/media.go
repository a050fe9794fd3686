// ABOUTME: Media record handlers for the Huma API
// ABOUTME: Provides single-record lookup and attribution generation endpoints

package handlers

import (
	"context"
	"net/http"

	"openmedia-app-api/api/dto/mappers"
	"openmedia-app-api/api/dto/responses"
	"openmedia-app-api/core/attribution"
	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/i18n"
	"openmedia-app-api/core/interfaces"
	"openmedia-app-api/core/results"
	"openmedia-app-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// MediaHandler handles single media record HTTP requests
type MediaHandler struct {
	store        *results.Store
	colorService ColorService
	translator   interfaces.Translator
	flags        featureflags.Manager
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(store *results.Store, colorService ColorService, flags featureflags.Manager) *MediaHandler {
	if flags == nil {
		flags = featureflags.NewEnvManager()
	}
	return &MediaHandler{
		store:        store,
		colorService: colorService,
		translator:   i18n.Default(),
		flags:        flags,
	}
}

// WithTranslator overrides the message catalogue used for attribution
func (h *MediaHandler) WithTranslator(translator interfaces.Translator) *MediaHandler {
	if translator != nil {
		h.translator = translator
	}
	return h
}

// RegisterRoutes registers all media record routes
func (h *MediaHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getMediaItem",
		Method:      http.MethodGet,
		Path:        "/media/{mediaType}/{id}",
		Summary:     "Get a stored media record",
		Description: "Returns a single record from the stored search results",
		Tags:        []string{"Media"},
	}, h.GetMediaItem)

	huma.Register(api, huma.Operation{
		OperationID: "getAttribution",
		Method:      http.MethodGet,
		Path:        "/media/{mediaType}/{id}/attribution",
		Summary:     "Generate an attribution string",
		Description: "Builds a Creative Commons attribution for a stored record in HTML, plain text, or XML form",
		Tags:        []string{"Media"},
	}, h.GetAttribution)
}

// GetMediaItemInput defines the input for the GetMediaItem operation
type GetMediaItemInput struct {
	MediaType string `path:"mediaType" enum:"image,audio" doc:"Media type of the record"`
	ID        string `path:"id" doc:"Provider identifier of the record"`
}

// GetMediaItemOutput defines the output for the GetMediaItem operation
type GetMediaItemOutput struct {
	Body responses.MediaResponse
}

// GetMediaItem handles the GET /media/{mediaType}/{id} endpoint
func (h *MediaHandler) GetMediaItem(ctx context.Context, input *GetMediaItemInput) (*GetMediaItemOutput, error) {
	item, err := h.store.GetItemByID(domain.MediaType(input.MediaType), input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	var color *domain.RGBColor
	if h.colorService != nil && item.Thumbnail != "" {
		color, _ = h.colorService.GetCachedColor(ctx, item.Thumbnail)
	}

	resp := mappers.ToMediaResponseWithColor(item, color)
	return &GetMediaItemOutput{Body: *resp}, nil
}

// GetAttributionInput defines the input for the GetAttribution operation
type GetAttributionInput struct {
	MediaType string `path:"mediaType" enum:"image,audio" doc:"Media type of the record"`
	ID        string `path:"id" doc:"Provider identifier of the record"`
	Format    string `query:"format" enum:"html,plain,xml" default:"html" doc:"Output format"`
	Icons     bool   `query:"icons" default:"true" doc:"Include license icons (html only)"`
}

// GetAttributionOutput defines the output for the GetAttribution operation
type GetAttributionOutput struct {
	Body responses.AttributionResponse
}

// GetAttribution handles the GET /media/{mediaType}/{id}/attribution endpoint
func (h *MediaHandler) GetAttribution(ctx context.Context, input *GetAttributionInput) (*GetAttributionOutput, error) {
	item, err := h.store.GetItemByID(domain.MediaType(input.MediaType), input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	opts := attribution.Options{
		IncludeIcons: input.Icons,
	}

	switch input.Format {
	case "plain":
		opts.Plaintext = true
	case "xml":
		opts.XML = true
		opts.EscapeXML = h.flags.IsEnabled(featureflags.XMLEscaping)
	}

	output := &GetAttributionOutput{}
	output.Body = responses.AttributionResponse{
		ID:          item.ID,
		MediaType:   string(item.MediaType),
		Format:      input.Format,
		Attribution: attribution.Generate(item, h.translator, opts),
	}
	return output, nil
}
