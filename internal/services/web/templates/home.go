package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/listings"
)

// HomePage renders the hero banner and the rental listings rail.
func HomePage(loc Localizer, forRent []listings.Property) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="banner"><img src="/static/hero.svg" width="700" height="500"`)
		h.attr("alt", T(loc, "home.banner.image_alt"))
		h.raw(`><div class="banner-copy"><p class="banner-purpose">`)
		h.text(T(loc, "home.banner.purpose"))
		h.raw("</p><h1>")
		h.text(T(loc, "home.banner.title_line1"))
		h.raw("<br>")
		h.text(T(loc, "home.banner.title_line2"))
		h.raw(`</h1><p class="banner-description">`)
		h.text(T(loc, "home.banner.description"))
		h.raw("</p></div></section>")
		h.component(ctx, PropertyGrid(loc, forRent))
	})
}
