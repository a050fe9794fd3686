// ABOUTME: Escaping helpers for HTML and XML attribution output
// ABOUTME: Provides minimal metacharacter escaping for embedded field values

package attribution

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeHTML escapes the five HTML metacharacters in a field value before
// it is embedded in attribution markup.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeXML escapes XML metacharacters for the opt-in escaped XML mode
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
