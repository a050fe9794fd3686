// ABOUTME: HTML utilities for stripping markup from provider-supplied text
// ABOUTME: Uses the x/net/html tokenizer so entities and nesting are handled properly

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes markup from a string, decodes entities, and collapses
// whitespace. Provider titles and descriptions occasionally carry markup
// that must never reach display or attribution output as tags.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var text strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return collapseWhitespace(text.String())

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) {
				skipDepth++
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) && skipDepth > 0 {
				skipDepth--
			}

		case html.TextToken:
			if skipDepth == 0 {
				text.Write(tokenizer.Text())
			}
		}
	}
}

// isInvisible reports whether a tag's content is never visible text
func isInvisible(tag string) bool {
	return tag == "script" || tag == "style"
}

// collapseWhitespace folds all whitespace runs to single spaces and trims
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
