package license

import "testing"

func TestName_StandardLicense(t *testing.T) {
	name := Name("by", "4.0")

	if name != "CC BY 4.0" {
		t.Errorf("Name = %q, want %q", name, "CC BY 4.0")
	}
}

func TestName_CompoundLicense(t *testing.T) {
	name := Name("by-nc-sa", "3.0")

	if name != "CC BY-NC-SA 3.0" {
		t.Errorf("Name = %q, want %q", name, "CC BY-NC-SA 3.0")
	}
}

func TestName_PublicDomainMark(t *testing.T) {
	name := Name("pdm", "1.0")

	if name != "Public Domain Mark 1.0" {
		t.Errorf("Name = %q, want %q", name, "Public Domain Mark 1.0")
	}
}

func TestName_CCZero(t *testing.T) {
	name := Name("cc0", "1.0")

	if name != "CC0 1.0" {
		t.Errorf("Name = %q, want %q", name, "CC0 1.0")
	}
}

func TestName_UnknownCode(t *testing.T) {
	name := Name("not-a-license", "1.0")

	if name != "" {
		t.Errorf("Name should resolve unknown codes to empty string, got %q", name)
	}
}

func TestName_MissingVersion(t *testing.T) {
	name := Name("by", "")

	if name != "CC BY" {
		t.Errorf("Name = %q, want %q", name, "CC BY")
	}
}

func TestElements_OrderIsStable(t *testing.T) {
	elements := Elements("by-nc-sa")

	want := []Element{ElementCC, ElementBY, ElementNC, ElementSA}
	if len(elements) != len(want) {
		t.Fatalf("Elements returned %d elements, want %d", len(elements), len(want))
	}
	for i, element := range want {
		if elements[i] != element {
			t.Errorf("Elements[%d] = %v, want %v", i, elements[i], element)
		}
	}
}

func TestElements_UnknownCode(t *testing.T) {
	if Elements("wtfpl") != nil {
		t.Error("Elements should return nil for unknown codes")
	}
}

func TestIconURLs_OnePerElement(t *testing.T) {
	urls := IconURLs(Elements("by-sa"))

	if len(urls) != 3 {
		t.Fatalf("IconURLs returned %d URLs, want 3", len(urls))
	}
	if urls[0] != "https://mirrors.creativecommons.org/presskit/icons/cc.svg" {
		t.Errorf("IconURLs[0] = %q", urls[0])
	}
}

func TestIconURLs_AllOrNothing(t *testing.T) {
	// sampling.plus has no press-kit icon, so the whole set must be dropped
	urls := IconURLs(Elements("nc-sampling+"))

	if urls != nil {
		t.Errorf("IconURLs should return nil when any element lacks an icon, got %v", urls)
	}
}

func TestIconURLs_EmptyElements(t *testing.T) {
	if IconURLs(nil) != nil {
		t.Error("IconURLs should return nil for an empty element set")
	}
}

func TestIsPublicDomain(t *testing.T) {
	testCases := []struct {
		code string
		want bool
	}{
		{"pdm", true},
		{"cc0", true},
		{"by", false},
		{"by-nc-nd", false},
	}

	for _, tc := range testCases {
		if got := IsPublicDomain(tc.code); got != tc.want {
			t.Errorf("IsPublicDomain(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
