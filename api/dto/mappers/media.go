// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"openmedia-app-api/api/dto/responses"
	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/results"
	"openmedia-app-api/pkg/utils/duration"
)

// ToMediaResponse converts a domain Media record to a MediaResponse DTO
func ToMediaResponse(item *domain.Media) *responses.MediaResponse {
	if item == nil {
		return nil
	}

	resp := &responses.MediaResponse{
		ID:                item.ID,
		Title:             item.Title,
		OriginalTitle:     item.OriginalTitle,
		ForeignLandingURL: item.ForeignLandingURL,
		URL:               item.URL,
		Thumbnail:         item.Thumbnail,
		Creator:           item.Creator,
		CreatorURL:        item.CreatorURL,
		License:           item.License,
		LicenseVersion:    item.LicenseVersion,
		LicenseURL:        item.LicenseURL,
		Attribution:       item.Attribution,
		Provider:          item.Provider,
		Source:            item.Source,
		MediaType:         string(item.MediaType),
		Category:          item.Category,
		FileType:          item.FileType,
	}

	if item.MediaType == domain.MediaTypeAudio && item.Duration > 0 {
		resp.Duration = duration.FormatSeconds(item.Duration)
		resp.DurationSeconds = item.Duration
	}

	return resp
}

// ToMediaResponseWithColor converts a record and attaches its thumbnail color
func ToMediaResponseWithColor(item *domain.Media, color *domain.RGBColor) *responses.MediaResponse {
	resp := ToMediaResponse(item)
	if resp != nil && color != nil {
		resp.ThumbnailColor = &responses.ColorResponse{R: color.R, G: color.G, B: color.B}
	}
	return resp
}

// ToMediaResponses converts a result slice, attaching colors where available
func ToMediaResponses(items []*domain.Media, colors map[string]*domain.RGBColor) []responses.MediaResponse {
	out := make([]responses.MediaResponse, 0, len(items))

	for _, item := range items {
		var color *domain.RGBColor
		if item != nil && colors != nil {
			color = colors[item.Thumbnail]
		}
		if resp := ToMediaResponseWithColor(item, color); resp != nil {
			out = append(out, *resp)
		}
	}

	return out
}

// ToErrorInfoResponse converts a fetch error to its DTO
func ToErrorInfoResponse(info *results.ErrorInfo) *responses.ErrorInfoResponse {
	if info == nil {
		return nil
	}

	return &responses.ErrorInfoResponse{
		RequestKind: info.RequestKind,
		SearchType:  string(info.SearchType),
		StatusCode:  info.StatusCode,
		Code:        info.Code,
		Message:     info.Message,
	}
}

// ToFetchStateResponse converts a fetch state to its DTO
func ToFetchStateResponse(state results.FetchState) responses.FetchStateResponse {
	return responses.FetchStateResponse{
		HasStarted: state.HasStarted,
		IsFetching: state.IsFetching,
		IsFinished: state.IsFinished,
		Error:      ToErrorInfoResponse(state.Error),
	}
}

// ToErrorInfoResponses converts the per-media-type error list
func ToErrorInfoResponses(infos []results.ErrorInfo) []responses.ErrorInfoResponse {
	if len(infos) == 0 {
		return nil
	}

	out := make([]responses.ErrorInfoResponse, 0, len(infos))
	for i := range infos {
		out = append(out, *ToErrorInfoResponse(&infos[i]))
	}
	return out
}

// ToMediaTypeCountResponses converts per-media-type result counts
func ToMediaTypeCountResponses(counts []results.MediaTypeCount) []responses.MediaTypeCountResponse {
	out := make([]responses.MediaTypeCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, responses.MediaTypeCountResponse{
			MediaType: string(c.MediaType),
			Count:     c.Count,
		})
	}
	return out
}
