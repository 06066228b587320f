package listings

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from listing text and returns plain text.
// Templates escape on output, so entities produced by the sanitizer are
// decoded again here.
func SanitizeText(s string) string {
	cleaned := html.UnescapeString(strictPolicy.Sanitize(s))
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			return r
		}
		return -1
	}, cleaned)
	return strings.TrimSpace(cleaned)
}

func sanitizeProperty(p Property) Property {
	p.Title = SanitizeText(p.Title)
	p.Description = SanitizeText(p.Description)
	if p.Agency != nil {
		agency := *p.Agency
		agency.Name = SanitizeText(agency.Name)
		p.Agency = &agency
	}
	if len(p.Amenities) > 0 {
		groups := make([]AmenityGroup, len(p.Amenities))
		for i, group := range p.Amenities {
			groups[i].Text = SanitizeText(group.Text)
			groups[i].Amenities = make([]Amenity, len(group.Amenities))
			for j, amenity := range group.Amenities {
				groups[i].Amenities[j].Text = SanitizeText(amenity.Text)
			}
		}
		p.Amenities = groups
	}
	return p
}
