// ABOUTME: Fixed English message catalogue with placeholder substitution
// ABOUTME: Backs attribution rendering when no live translator is supplied

package i18n

import "strings"

// englishMessages is the English source of truth for attribution phrases.
// Live deployments supply their own Translator; this catalogue exists for
// the no-i18n code path (tests, CLI tools) and must keep the same
// `{placeholder}` substitution semantics as a live translator.
var englishMessages = map[string]string{
	"attribution.text":          "{title} {creator} {markedLicensed} {license}{viewLegal}",
	"attribution.genericTitle":  "This work",
	"attribution.actualTitle":   "This work, titled “{title}”,",
	"attribution.creatorText":   "by {creator}",
	"attribution.licensedText":  "is licensed under",
	"attribution.markedText":    "is marked with",
	"attribution.viewLegalText": ". To view {terms}, visit {url}.",
	"attribution.licenseTerms":  "the terms",
	"attribution.licenseCopy":   "a copy of this license",
}

// Catalogue resolves message keys against a fixed in-memory message map
type Catalogue struct {
	messages map[string]string
}

// Default returns the built-in English catalogue
func Default() *Catalogue {
	return &Catalogue{messages: englishMessages}
}

// NewCatalogue creates a catalogue from an arbitrary message map
func NewCatalogue(messages map[string]string) *Catalogue {
	return &Catalogue{messages: messages}
}

// Translate resolves a dotted key and substitutes `{name}` placeholders
// from data. Unknown keys resolve to the key itself so missing messages
// surface in output instead of vanishing; unknown placeholders are left
// untouched.
func (c *Catalogue) Translate(key string, data map[string]string) string {
	message, ok := c.messages[key]
	if !ok {
		return key
	}

	return Substitute(message, data)
}

// Substitute replaces `{name}` placeholders in a message with values from
// data. Placeholders with no matching entry are left as-is.
func Substitute(message string, data map[string]string) string {
	if len(data) == 0 {
		return message
	}

	pairs := make([]string, 0, len(data)*2)
	for name, value := range data {
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(message)
}
