// ABOUTME: Attribution formatter assembles Creative Commons credit strings from media metadata
// ABOUTME: Supports HTML, plaintext, and Dublin Core XML output modes with localization

package attribution

import (
	"fmt"
	"net/url"
	"strings"

	"openmedia-app-api/core/domain"
	"openmedia-app-api/core/i18n"
	"openmedia-app-api/core/interfaces"
	"openmedia-app-api/core/license"
)

// Options selects one of the three attribution rendering modes.
// XML takes precedence over Plaintext when both are set; XML mode ignores
// the other flags entirely.
type Options struct {
	// IncludeIcons renders one license-element icon per element in HTML
	// mode. Icons are all-or-nothing per license.
	IncludeIcons bool

	// Plaintext renders a plain sentence with no markup or escaping
	Plaintext bool

	// XML renders a Dublin Core snippet instead of a sentence
	XML bool

	// EscapeXML applies XML escaping to interpolated fields in XML mode.
	// Off by default: the legacy output interpolates fields raw, and
	// downstream consumers may depend on those exact bytes.
	EscapeXML bool
}

// Generate renders an attribution string for a media record. It is a pure
// function: nil media yields an empty string and missing optional fields
// degrade to omitted clauses or generic text, never an error. When
// translator is nil the built-in English catalogue is used.
func Generate(media *domain.Media, translator interfaces.Translator, opts Options) string {
	if media == nil {
		return ""
	}

	if translator == nil {
		translator = i18n.Default()
	}

	var out string
	if opts.XML {
		out = xmlAttribution(media, opts.EscapeXML)
	} else {
		out = sentenceAttribution(media, translator, opts)
	}

	return collapseSpaces(out)
}

// sentenceAttribution renders the HTML or plaintext sentence form
func sentenceAttribution(media *domain.Media, translator interfaces.Translator, opts Options) string {
	plain := opts.Plaintext

	data := map[string]string{
		"title":          titleClause(media, translator, plain),
		"creator":        creatorClause(media, translator, plain),
		"markedLicensed": markedLicensedClause(media, translator),
		"license":        licenseClause(media, plain, opts.IncludeIcons),
		"viewLegal":      viewLegalClause(media, translator, plain),
	}

	sentence := translator.Translate("attribution.text", data)
	if plain {
		return sentence
	}

	return fmt.Sprintf(`<p class="attribution">%s</p>`, sentence)
}

// titleClause resolves the title slot: the real title wrapped in the
// localized "titled" phrasing, or the generic-title phrase when empty.
// Non-plaintext titles are escaped and linked to the landing page.
func titleClause(media *domain.Media, translator interfaces.Translator, plain bool) string {
	title := media.OriginalTitle

	if title == "" {
		generic := translator.Translate("attribution.genericTitle", nil)
		if plain || media.ForeignLandingURL == "" {
			return generic
		}
		return anchor(media.ForeignLandingURL, generic)
	}

	if !plain {
		title = escapeHTML(title)
		if media.ForeignLandingURL != "" {
			title = anchor(media.ForeignLandingURL, title)
		}
	}

	return translator.Translate("attribution.actualTitle", map[string]string{
		"title": title,
	})
}

// creatorClause resolves the "by {creator}" slot; empty when the record
// carries no creator.
func creatorClause(media *domain.Media, translator interfaces.Translator, plain bool) string {
	if media.Creator == "" {
		return ""
	}

	creator := media.Creator
	if !plain {
		creator = escapeHTML(creator)
		if media.CreatorURL != "" {
			creator = anchor(media.CreatorURL, creator)
		}
	}

	return translator.Translate("attribution.creatorText", map[string]string{
		"creator": creator,
	})
}

// markedLicensedClause picks "is marked with" for public domain marks and
// "is licensed under" for active licenses.
func markedLicensedClause(media *domain.Media, translator interfaces.Translator) string {
	if license.IsPublicDomain(media.License) {
		return translator.Translate("attribution.markedText", nil)
	}
	return translator.Translate("attribution.licensedText", nil)
}

// licenseClause resolves the full license name, optionally decorated with
// element icons, and links it to the license deed when one is known.
func licenseClause(media *domain.Media, plain bool, includeIcons bool) string {
	name := license.Name(media.License, media.LicenseVersion)

	if plain {
		return name
	}

	text := name
	if includeIcons {
		for _, iconURL := range license.IconURLs(license.Elements(media.License)) {
			text += fmt.Sprintf(` <img src="%s" style="height: 1em; margin-right: 0.125em; display: inline;" />`, iconURL)
		}
	}

	if media.LicenseURL == "" {
		return text
	}

	return anchor(withRefParam(media.LicenseURL), text)
}

// viewLegalClause directs plaintext readers to the license deed. It only
// appears in plaintext mode when a license URL is known; the wording
// distinguishes public domain marks from active licenses.
func viewLegalClause(media *domain.Media, translator interfaces.Translator, plain bool) string {
	if !plain || media.LicenseURL == "" {
		return ""
	}

	termsKey := "attribution.licenseCopy"
	if license.IsPublicDomain(media.License) {
		termsKey = "attribution.licenseTerms"
	}

	return translator.Translate("attribution.viewLegalText", map[string]string{
		"terms": translator.Translate(termsKey, nil),
		"url":   withRefParam(media.LicenseURL),
	})
}

// anchor wraps text in a link that is safe to open from third-party
// pages. The href is escaped so a quote in a record URL cannot break out
// of the attribute.
func anchor(href, text string) string {
	return fmt.Sprintf(`<a target="_blank" rel="noopener noreferrer" href="%s">%s</a>`, escapeHTML(href), text)
}

// withRefParam appends the ref=openverse query parameter so deed visits
// originating from attributions are identifiable. Unparseable URLs are
// returned unchanged.
func withRefParam(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	query := parsed.Query()
	query.Set("ref", "openverse")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// collapseSpaces folds runs of two spaces into one and trims the ends.
// Omitted optional clauses would otherwise leave double spaces behind.
func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
