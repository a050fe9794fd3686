// ABOUTME: License metadata resolver for Creative Commons and public domain marks
// ABOUTME: Maps short license codes to full names, license elements, and icon URLs

package license

import (
	"fmt"
	"strings"
)

// Element is one symbolic component of a Creative Commons license
type Element string

const (
	ElementCC           Element = "cc"
	ElementBY           Element = "by"
	ElementSA           Element = "sa"
	ElementNC           Element = "nc"
	ElementND           Element = "nd"
	ElementPD           Element = "pd"
	ElementZero         Element = "zero"
	ElementSamplingPlus Element = "sampling.plus"
)

// iconBaseURL is the Creative Commons press-kit icon mirror. One SVG per
// license element.
const iconBaseURL = "https://mirrors.creativecommons.org/presskit/icons"

// elementsByCode maps a short license code to its ordered license elements
var elementsByCode = map[string][]Element{
	"by":           {ElementCC, ElementBY},
	"by-sa":        {ElementCC, ElementBY, ElementSA},
	"by-nd":        {ElementCC, ElementBY, ElementND},
	"by-nc":        {ElementCC, ElementBY, ElementNC},
	"by-nc-sa":     {ElementCC, ElementBY, ElementNC, ElementSA},
	"by-nc-nd":     {ElementCC, ElementBY, ElementNC, ElementND},
	"cc0":          {ElementCC, ElementZero},
	"pdm":          {ElementPD},
	"sampling+":    {ElementCC, ElementSamplingPlus},
	"nc-sampling+": {ElementCC, ElementNC, ElementSamplingPlus},
}

// elementsWithoutIcons lists elements the press kit carries no icon for.
// The retired sampling licenses predate the element icon set.
var elementsWithoutIcons = map[Element]bool{
	ElementSamplingPlus: true,
}

// Name returns the full human-readable license name for a (code, version)
// pair, e.g. ("by", "4.0") -> "CC BY 4.0" and ("pdm", "1.0") ->
// "Public Domain Mark 1.0". Unknown codes resolve to an empty string.
func Name(code, version string) string {
	switch code {
	case "":
		return ""
	case "pdm":
		return strings.TrimSpace(fmt.Sprintf("Public Domain Mark %s", version))
	case "cc0":
		return strings.TrimSpace(fmt.Sprintf("CC0 %s", version))
	default:
		if _, known := elementsByCode[code]; !known {
			return ""
		}
		return strings.TrimSpace(fmt.Sprintf("CC %s %s", strings.ToUpper(code), version))
	}
}

// Elements returns the ordered license elements for a short license code,
// or nil for unknown codes.
func Elements(code string) []Element {
	return elementsByCode[code]
}

// IconURL returns the icon URL for a license element, or an empty string
// if no icon exists for it.
func IconURL(element Element) string {
	if elementsWithoutIcons[element] {
		return ""
	}
	return fmt.Sprintf("%s/%s.svg", iconBaseURL, element)
}

// IconURLs resolves one icon URL per element. Icons are all-or-nothing:
// if any element lacks an icon, nil is returned so callers never render a
// partial icon row.
func IconURLs(elements []Element) []string {
	if len(elements) == 0 {
		return nil
	}

	urls := make([]string, 0, len(elements))
	for _, element := range elements {
		url := IconURL(element)
		if url == "" {
			return nil
		}
		urls = append(urls, url)
	}

	return urls
}

// IsPublicDomain reports whether the code marks a work as being in the
// public domain rather than actively licensed.
func IsPublicDomain(code string) bool {
	return code == "pdm" || code == "cc0"
}
