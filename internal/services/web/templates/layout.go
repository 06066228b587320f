package templates

import (
	"context"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/listings"
	platformi18n "github.com/louisbranch/dwelling.space/internal/platform/i18n"
	sharedi18n "github.com/louisbranch/dwelling.space/internal/services/shared/i18nhttp"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
	"golang.org/x/text/language"
)

const (
	htmxScriptURL    = "https://unpkg.com/htmx.org@2.0.4"
	chartScriptURL   = "https://cdn.jsdelivr.net/npm/chart.js@4.4.7/dist/chart.umd.min.js"
	leafletScriptURL = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
	leafletStyleURL  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	mainContentID    = "main"
	navID            = "top-nav"
)

// LayoutOptions is the page chrome state shared by every page.
type LayoutOptions struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// NavItem is one entry of the top navigation bar.
type NavItem struct {
	Label  string
	URL    string
	Active bool
}

// NavItems returns the navigation entries with the entry matching the
// current request marked active.
func NavItems(loc Localizer, currentPath, currentQuery string) []NavItem {
	purpose := ""
	if query, err := url.ParseQuery(currentQuery); err == nil {
		purpose = strings.TrimSpace(query.Get(listings.ParamPurpose))
	}
	onSearch := currentPath == routepath.Search
	buy := url.Values{listings.ParamPurpose: {listings.PurposeForSale}}
	rent := url.Values{listings.ParamPurpose: {listings.PurposeForRent}}
	return []NavItem{
		{Label: T(loc, "web.nav.home"), URL: routepath.Root, Active: currentPath == routepath.Root},
		{Label: T(loc, "web.nav.search"), URL: routepath.Search, Active: onSearch && purpose == ""},
		{Label: T(loc, "web.nav.buy"), URL: routepath.SearchWith(buy), Active: onSearch && purpose == listings.PurposeForSale},
		{Label: T(loc, "web.nav.rent"), URL: routepath.SearchWith(rent), Active: onSearch && purpose == listings.PurposeForRent},
		{Label: T(loc, "web.nav.market_trends"), URL: routepath.MarketTrends, Active: currentPath == routepath.MarketTrends},
	}
}

// LanguageOptions returns the language switcher entries.
func LanguageOptions(opts LayoutOptions) []sharedi18n.LanguageOption {
	return sharedi18n.BuildLanguageOptions(sharedi18n.Supported(), opts.Lang, func(tag language.Tag) string {
		return T(opts.Loc, sharedi18n.LanguageKeyLabel(tag))
	})
}

// PageTitle joins a page title with the application name.
func PageTitle(loc Localizer, title string) string {
	appName := T(loc, "web.app_name")
	title = strings.TrimSpace(title)
	if title == "" || title == appName {
		return appName
	}
	return title + " | " + appName
}

func textDirection(lang string) string {
	if platformi18n.IsRTL(sharedi18n.NormalizeTag(lang)) {
		return "rtl"
	}
	return "ltr"
}

// Layout renders a full HTML document around its children.
func Layout(opts LayoutOptions) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = platformi18n.DefaultTag().String()
		}
		h.raw("<!doctype html><html")
		h.attr("lang", lang)
		h.attr("dir", textDirection(lang))
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(PageTitle(opts.Loc, opts.Title))
		h.raw(`</title><link rel="stylesheet" href="/static/app.css"><link rel="stylesheet"`)
		h.url("href", leafletStyleURL)
		h.raw("><script")
		h.url("src", htmxScriptURL)
		h.raw("></script><script")
		h.url("src", chartScriptURL)
		h.raw("></script><script")
		h.url("src", leafletScriptURL)
		h.raw(`></script><script src="/static/app.js" defer></script></head><body><div class="shell"><header>`)
		h.component(ctx, navBar(opts, false))
		h.raw("</header><main")
		h.attr("id", mainContentID)
		h.raw(">")
		h.children(ctx)
		h.raw("</main>")
		h.component(ctx, footer(opts))
		h.raw("</div></body></html>")
	})
}

// MainFragment renders the children for an HTMX swap of the main element.
// The title and navigation bar ride along so they stay in sync.
func MainFragment(opts LayoutOptions) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw("<title>")
		h.text(PageTitle(opts.Loc, opts.Title))
		h.raw("</title>")
		h.children(ctx)
		h.component(ctx, navBar(opts, true))
	})
}

func navBar(opts LayoutOptions, outOfBand bool) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw("<nav")
		h.attr("id", navID)
		h.attr("class", "top-nav")
		if outOfBand {
			h.attr("hx-swap-oob", "true")
		}
		h.raw(">")
		for _, item := range NavItems(opts.Loc, opts.CurrentPath, opts.CurrentQuery) {
			class := "nav-link"
			if item.Active {
				class += " active"
			}
			h.raw("<a")
			h.attr("class", class)
			h.url("href", item.URL)
			h.url("hx-get", item.URL)
			h.attr("hx-target", "#"+mainContentID)
			h.attr("hx-push-url", "true")
			if item.Active {
				h.attr("aria-current", "page")
			}
			h.raw(">")
			h.text(item.Label)
			h.raw("</a>")
		}
		h.raw("</nav>")
	})
}

func footer(opts LayoutOptions) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw(`<footer class="site-footer"><p>`)
		h.text(T(opts.Loc, "web.footer.copyright"))
		h.raw(`</p><ul class="language-switcher">`)
		for _, option := range LanguageOptions(opts) {
			h.raw("<li><a")
			h.url("href", sharedi18n.LanguageURL(opts.CurrentPath, opts.CurrentQuery, option.Tag))
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.attr("aria-current", "true")
				h.attr("class", "active")
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a></li>")
		}
		h.raw(`</ul><button type="button" class="button button-outline" data-pointer-download>`)
		h.text(T(opts.Loc, "web.footer.save_pointer_data"))
		h.raw("</button></footer>")
	})
}
