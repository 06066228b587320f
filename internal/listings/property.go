package listings

import "strings"

// Photo is one listing image.
type Photo struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Agency is the brokerage advertising a listing.
type Agency struct {
	Name string `json:"name"`
	Logo *Photo `json:"logo,omitempty"`
}

// LogoURL returns the agency logo URL or an empty string.
func (a *Agency) LogoURL() string {
	if a == nil || a.Logo == nil {
		return ""
	}
	return a.Logo.URL
}

// Geography is a listing's coordinates.
type Geography struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both coordinates are set.
func (g *Geography) Valid() bool {
	return g != nil && g.Lat != 0 && g.Lng != 0
}

// Amenity is one facility label.
type Amenity struct {
	Text string `json:"text"`
}

// AmenityGroup groups facilities under a heading such as "Building".
type AmenityGroup struct {
	Text      string    `json:"text"`
	Amenities []Amenity `json:"amenities"`
}

// Location is an area in the listings API location hierarchy.
type Location struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"externalID"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
}

// Property is a listing as returned by the list and detail endpoints. List
// hits leave the detail-only fields empty.
type Property struct {
	ID               int64          `json:"id"`
	ExternalID       string         `json:"externalID"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	Price            float64        `json:"price"`
	RentFrequency    string         `json:"rentFrequency,omitempty"`
	Rooms            int            `json:"rooms"`
	Baths            int            `json:"baths"`
	Area             float64        `json:"area"`
	Purpose          string         `json:"purpose,omitempty"`
	Type             string         `json:"type,omitempty"`
	FurnishingStatus string         `json:"furnishingStatus,omitempty"`
	IsVerified       bool           `json:"isVerified"`
	CoverPhoto       *Photo         `json:"coverPhoto,omitempty"`
	Photos           []Photo        `json:"photos,omitempty"`
	Agency           *Agency        `json:"agency,omitempty"`
	Geography        *Geography     `json:"geography,omitempty"`
	Amenities        []AmenityGroup `json:"amenities,omitempty"`
	Location         []Location     `json:"location,omitempty"`
}

// CoverURL returns the cover photo, falling back to the first photo.
func (p Property) CoverURL() string {
	if p.CoverPhoto != nil && p.CoverPhoto.URL != "" {
		return p.CoverPhoto.URL
	}
	if len(p.Photos) > 0 {
		return p.Photos[0].URL
	}
	return ""
}

// AmenityLabels flattens the grouped amenities, skipping blanks and
// duplicates while keeping API order.
func (p Property) AmenityLabels() []string {
	seen := map[string]struct{}{}
	var labels []string
	for _, group := range p.Amenities {
		for _, amenity := range group.Amenities {
			text := strings.TrimSpace(amenity.Text)
			if text == "" {
				continue
			}
			if _, ok := seen[text]; ok {
				continue
			}
			seen[text] = struct{}{}
			labels = append(labels, text)
		}
	}
	return labels
}

// AreaName returns the most specific named location of the listing.
func (p Property) AreaName() string {
	best := -1
	name := ""
	for _, loc := range p.Location {
		if loc.Level > best && strings.TrimSpace(loc.Name) != "" {
			best = loc.Level
			name = loc.Name
		}
	}
	return name
}

type listResponse struct {
	Hits    []Property `json:"hits"`
	NbHits  int        `json:"nbHits"`
	Page    int        `json:"page"`
	NbPages int        `json:"nbPages"`
}

type autoCompleteResponse struct {
	Hits []Location `json:"hits"`
}
