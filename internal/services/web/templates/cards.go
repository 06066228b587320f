package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

// ListingID returns the identifier used in listing links.
func ListingID(p listings.Property) string {
	if id := strings.TrimSpace(p.ExternalID); id != "" {
		return id
	}
	if p.ID != 0 {
		return strconv.FormatInt(p.ID, 10)
	}
	return ""
}

// PropertyCard renders one listing tile linking to its detail page.
func PropertyCard(loc Localizer, p listings.Property) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<a class="property-card"`)
		h.url("href", routepath.Property(ListingID(p)))
		h.raw(">")
		if cover := p.CoverURL(); cover != "" {
			h.raw(`<img class="property-card-cover" loading="lazy" width="400" height="260"`)
			h.url("src", cover)
			h.attr("alt", p.Title)
			h.raw(">")
		} else {
			h.raw(`<div class="property-card-cover placeholder"></div>`)
		}
		h.raw(`<div class="property-card-body"><div class="property-card-price">`)
		h.component(ctx, verifiedBadge(loc, p.IsVerified))
		h.raw("<strong>")
		h.text(Price(loc, p.Price, p.RentFrequency))
		h.raw("</strong>")
		h.component(ctx, agencyAvatar(p.Agency))
		h.raw(`</div>`)
		h.component(ctx, propertySpecs(loc, p))
		h.raw(`<p class="property-card-title">`)
		h.text(Truncate(p.Title, cardTitleLimit))
		h.raw("</p></div></a>")
	})
}

// PropertyGrid renders listing cards in a wrapping grid.
func PropertyGrid(loc Localizer, properties []listings.Property) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="property-grid">`)
		for _, p := range properties {
			h.component(ctx, PropertyCard(loc, p))
		}
		h.raw("</div>")
	})
}

func propertySpecs(loc Localizer, p listings.Property) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="property-specs">`)
		h.text(T(loc, "web.listing.specs", p.Rooms, p.Baths, Millify(p.Area)))
		h.raw("</div>")
	})
}

func verifiedBadge(loc Localizer, verified bool) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		if !verified {
			return
		}
		h.raw(`<span class="verified"`)
		h.attr("title", T(loc, "web.listing.verified"))
		h.raw(">&#10003;</span>")
	})
}

func agencyAvatar(agency *listings.Agency) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		logo := agency.LogoURL()
		if logo == "" {
			return
		}
		h.raw(`<img class="avatar" width="32" height="32" loading="lazy"`)
		h.url("src", logo)
		h.attr("alt", agency.Name)
		h.raw(">")
	})
}
