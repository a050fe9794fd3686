// ABOUTME: Dublin Core XML attribution rendering
// ABOUTME: Emits a fixed-schema RDF snippet describing a media record

package attribution

import (
	"fmt"

	"openmedia-app-api/core/domain"
)

// xmlAttribution renders the Dublin Core form of an attribution. The
// legacy schema interpolates fields raw; escaped=true opts into escaping
// XML metacharacters instead. Tabs are used for indentation so the
// whitespace normalization pass leaves the snippet intact.
func xmlAttribution(media *domain.Media, escaped bool) string {
	dcType := "StillImage"
	if media.MediaType == domain.MediaTypeAudio {
		dcType = "Sound"
	}

	field := func(s string) string {
		if escaped {
			return escapeXML(s)
		}
		return s
	}

	return fmt.Sprintf(
		"<rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\" xmlns:dc=\"http://purl.org/dc/elements/1.1/\">\n"+
			"\t<rdf:Description rdf:about=\"%s\">\n"+
			"\t\t<dc:title>%s</dc:title>\n"+
			"\t\t<dc:creator>%s</dc:creator>\n"+
			"\t\t<dc:type>%s</dc:type>\n"+
			"\t\t<dc:rights>%s</dc:rights>\n"+
			"\t</rdf:Description>\n"+
			"</rdf:RDF>",
		field(media.ForeignLandingURL),
		field(media.OriginalTitle),
		field(media.Creator),
		dcType,
		field(media.LicenseURL),
	)
}
