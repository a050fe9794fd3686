// ABOUTME: Translator interface for localized text lookup with placeholder substitution
// ABOUTME: Allows attribution text to be rendered against any translation catalogue

package interfaces

// Translator resolves a dotted message key to a localized string,
// substituting `{name}` placeholders from the supplied data map.
//
// Example usage:
//
//	tr.Translate("attribution.creatorText", map[string]string{
//		"creator": "Alice",
//	})
//	// "by Alice"
//
// Implementations must leave unknown placeholders untouched and return
// the key itself when no message exists for it, so that a missing
// catalogue entry degrades visibly rather than silently.
type Translator interface {
	Translate(key string, data map[string]string) string
}
