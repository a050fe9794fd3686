package requests

import "testing"

func TestSearchRequest_ApplyDefaults_Empty(t *testing.T) {
	req := SearchRequest{Query: "cats"}
	req.ApplyDefaults()

	if req.SearchType != "all" {
		t.Errorf("Expected default search type 'all', got %q", req.SearchType)
	}
	if req.Page != 1 {
		t.Errorf("Expected default page 1, got %d", req.Page)
	}
	if req.EnrichmentOptions == nil {
		t.Fatal("Expected enrichment options to be populated")
	}
	if req.EnrichmentOptions.ExtractMetadata == nil || !*req.EnrichmentOptions.ExtractMetadata {
		t.Error("Expected metadata extraction to default to true")
	}
	if req.EnrichmentOptions.ExtractColors == nil || !*req.EnrichmentOptions.ExtractColors {
		t.Error("Expected color extraction to default to true")
	}
}

func TestSearchRequest_ApplyDefaults_PreservesValues(t *testing.T) {
	disabled := false
	req := SearchRequest{
		Query:      "dogs",
		SearchType: "audio",
		Page:       3,
		Persist:    true,
		EnrichmentOptions: &EnrichmentOptions{
			ExtractMetadata: &disabled,
		},
	}
	req.ApplyDefaults()

	if req.SearchType != "audio" {
		t.Errorf("Expected search type 'audio', got %q", req.SearchType)
	}
	if req.Page != 3 {
		t.Errorf("Expected page 3, got %d", req.Page)
	}
	if !req.Persist {
		t.Error("Expected persist to stay true")
	}
	if *req.EnrichmentOptions.ExtractMetadata {
		t.Error("Expected metadata extraction to stay disabled")
	}
	if req.EnrichmentOptions.ExtractColors == nil || !*req.EnrichmentOptions.ExtractColors {
		t.Error("Expected color extraction to default to true")
	}
}
