package i18n

import "testing"

func TestTranslate_SubstitutesPlaceholders(t *testing.T) {
	catalogue := Default()

	got := catalogue.Translate("attribution.creatorText", map[string]string{
		"creator": "Alice",
	})

	if got != "by Alice" {
		t.Errorf("Translate = %q, want %q", got, "by Alice")
	}
}

func TestTranslate_UnknownKeyReturnsKey(t *testing.T) {
	catalogue := Default()

	got := catalogue.Translate("attribution.noSuchKey", nil)

	if got != "attribution.noSuchKey" {
		t.Errorf("Translate should return the key for unknown messages, got %q", got)
	}
}

func TestTranslate_UnknownPlaceholderLeftUntouched(t *testing.T) {
	catalogue := NewCatalogue(map[string]string{
		"greeting": "hello {name}, {unknown}",
	})

	got := catalogue.Translate("greeting", map[string]string{"name": "world"})

	if got != "hello world, {unknown}" {
		t.Errorf("Translate = %q, want %q", got, "hello world, {unknown}")
	}
}

func TestSubstitute_NoData(t *testing.T) {
	got := Substitute("plain {text}", nil)

	if got != "plain {text}" {
		t.Errorf("Substitute = %q, want input unchanged", got)
	}
}

func TestSubstitute_MultipleOccurrences(t *testing.T) {
	got := Substitute("{x} and {x}", map[string]string{"x": "y"})

	if got != "y and y" {
		t.Errorf("Substitute = %q, want %q", got, "y and y")
	}
}
