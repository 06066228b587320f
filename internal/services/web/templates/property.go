package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

const (
	photoGridSideCount = 4
	photoModalID       = "photo-modal"
	descriptionID      = "property-description"
)

// PropertyPage renders a listing's detail page.
func PropertyPage(loc Localizer, p listings.Property) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<article class="property-detail">`)
		if len(p.Photos) > 0 {
			h.component(ctx, photoGrid(loc, p.Photos))
			h.component(ctx, photoModal(loc, p.Photos))
		}

		h.raw(`<section class="property-summary"><div class="property-card-price">`)
		h.component(ctx, verifiedBadge(loc, p.IsVerified))
		h.raw("<strong>")
		h.text(Price(loc, p.Price, p.RentFrequency))
		h.raw("</strong>")
		h.component(ctx, agencyAvatar(p.Agency))
		h.raw("</div>")
		h.component(ctx, propertySpecs(loc, p))
		h.raw("</section>")

		h.raw(`<section class="property-body"><div class="property-description"><h1>`)
		h.text(p.Title)
		h.raw("</h1><p")
		h.attr("id", descriptionID)
		h.raw(` class="clamp">`)
		h.text(p.Description)
		h.raw(`</p><button type="button" class="link-button"`)
		h.attr("data-show-more", descriptionID)
		h.attr("data-label-more", T(loc, "property.description.show_more"))
		h.attr("data-label-less", T(loc, "property.description.show_less"))
		h.raw(">")
		h.text(T(loc, "property.description.show_more"))
		h.raw(`</button></div><div class="property-actions"><a class="button button-primary"`)
		h.url("href", routepath.Investment(ListingID(p)))
		h.raw(">")
		h.text(T(loc, "property.action.investment"))
		h.raw(`</a><button type="button" class="button"`)
		h.attr("data-save-alert", T(loc, "property.action.saved"))
		h.raw(">")
		h.text(T(loc, "property.action.save"))
		h.raw("</button></div></section>")

		if labels := p.AmenityLabels(); len(labels) > 0 {
			h.raw(`<section class="amenities"><h2>`)
			h.text(T(loc, "property.amenities.title"))
			h.raw(`</h2><ul class="amenity-list">`)
			for _, label := range labels {
				h.raw("<li>")
				h.text(label)
				h.raw("</li>")
			}
			h.raw("</ul></section>")
		}

		if p.Geography.Valid() {
			h.raw(`<section class="location"><h2>`)
			h.text(T(loc, "property.location.title"))
			h.raw("</h2>")
			h.component(ctx, ListingMap(p.Geography, p.Title))
			h.raw("</section>")
		}
		h.raw("</article>")
	})
}

// ListingMap renders the container the map script draws into.
func ListingMap(geo *listings.Geography, title string) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		if !geo.Valid() {
			return
		}
		h.raw(`<div class="map" data-map`)
		h.attr("data-lat", formatCoordinate(geo.Lat))
		h.attr("data-lng", formatCoordinate(geo.Lng))
		h.attr("data-title", title)
		h.raw("></div>")
	})
}

func photoGrid(loc Localizer, photos []listings.Photo) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="photo-grid"><figure class="photo-main"><img`)
		h.url("src", photos[0].URL)
		h.attr("alt", T(loc, "property.photos.main_alt"))
		h.raw("></figure>")
		side := photos[1:]
		if len(side) > photoGridSideCount {
			side = side[:photoGridSideCount]
		}
		for i, photo := range side {
			h.raw("<figure")
			h.attr("class", "photo-side photo-side-"+strconv.Itoa(i+1))
			h.raw("><img loading=\"lazy\"")
			h.url("src", photo.URL)
			h.attr("alt", T(loc, "property.photos.alt", i+1))
			h.raw(">")
			if i == photoGridSideCount-1 && len(photos) > photoGridSideCount+1 {
				h.raw(`<button type="button" class="button show-all-photos"`)
				h.attr("data-modal-open", photoModalID)
				h.raw(">")
				h.text(T(loc, "property.photos.show_all"))
				h.raw("</button>")
			}
			h.raw("</figure>")
		}
		h.raw("</section>")
	})
}

func photoModal(loc Localizer, photos []listings.Photo) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw(`<dialog class="photo-modal" data-carousel`)
		h.attr("id", photoModalID)
		h.raw("><header><h2>")
		h.text(T(loc, "property.photos.all_title"))
		h.raw(`</h2><button type="button" class="modal-close" data-modal-close`)
		h.attr("aria-label", T(loc, "property.photos.close"))
		h.raw(`>&times;</button></header><div class="carousel"><button type="button" class="carousel-arrow" data-carousel-prev`)
		h.attr("aria-label", T(loc, "property.photos.previous"))
		h.raw(`>&lsaquo;</button><div class="carousel-track">`)
		for i, photo := range photos {
			h.raw(`<img data-slide loading="lazy"`)
			h.url("src", photo.URL)
			h.attr("alt", T(loc, "property.photos.slide_alt", i+1))
			h.flag("hidden", i != 0)
			h.raw(">")
		}
		h.raw(`</div><button type="button" class="carousel-arrow" data-carousel-next`)
		h.attr("aria-label", T(loc, "property.photos.next"))
		h.raw(`>&rsaquo;</button></div><div class="carousel-dots">`)
		for i := range photos {
			h.raw(`<button type="button" class="carousel-dot"`)
			h.attr("data-carousel-dot", strconv.Itoa(i))
			h.attr("aria-label", T(loc, "property.photos.slide_alt", i+1))
			h.raw("></button>")
		}
		h.raw("</div></dialog>")
	})
}
