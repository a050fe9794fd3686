package html

import "testing"

func TestStripHTML_PlainTextUnchanged(t *testing.T) {
	got := StripHTML("Morning Mist")

	if got != "Morning Mist" {
		t.Errorf("StripHTML = %q, want input unchanged", got)
	}
}

func TestStripHTML_RemovesTags(t *testing.T) {
	got := StripHTML("Cat <b>drawing</b> from <a href='x'>here</a>")

	if got != "Cat drawing from here" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestStripHTML_DecodesEntities(t *testing.T) {
	got := StripHTML("Salt &amp; Pepper&#8230;")

	if got != "Salt & Pepper…" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestStripHTML_DropsScriptContent(t *testing.T) {
	got := StripHTML(`before<script>alert("x")</script>after`)

	if got != "beforeafter" {
		t.Errorf("StripHTML = %q, script content should vanish", got)
	}
}

func TestStripHTML_CollapsesWhitespace(t *testing.T) {
	got := StripHTML("<p>one</p>\n\t  <p>two</p>")

	if got != "one two" {
		t.Errorf("StripHTML = %q", got)
	}
}
