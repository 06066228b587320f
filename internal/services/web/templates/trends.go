package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/markettrends"
)

// MarketTrendsPage renders the dashboard sections and the insights block.
func MarketTrendsPage(loc Localizer, d markettrends.Dashboard) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<article class="market-trends"><h1>`)
		h.text(T(loc, d.TitleKey))
		h.raw("</h1><p>")
		h.text(T(loc, d.IntroKey))
		h.raw("</p>")
		for _, section := range d.Sections {
			h.component(ctx, trendSection(loc, section))
		}
		if len(d.Insights) > 0 {
			h.raw(`<section class="insights"><h2>`)
			h.text(T(loc, d.InsightsKey))
			h.raw("</h2>")
			for _, key := range d.Insights {
				h.raw("<p>")
				h.text(T(loc, key))
				h.raw("</p>")
			}
			h.raw("</section>")
		}
		h.raw("</article>")
	})
}

func trendSection(loc Localizer, s markettrends.Section) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="trend-section"`)
		h.attr("id", s.ID)
		h.raw("><h2>")
		h.text(T(loc, s.TitleKey))
		h.raw("</h2><p>")
		h.text(T(loc, s.BodyKey))
		h.raw("</p>")
		switch {
		case len(s.Tabs) > 0:
			h.component(ctx, trendTabs(loc, s.ID, s.Tabs))
		case s.Chart != nil:
			h.component(ctx, ChartCanvas("chart-"+s.Chart.ID, TrendChartConfig(loc, *s.Chart)))
		}
		h.raw("</section>")
	})
}

// trendTabs shows the first tab; the tab script toggles the rest.
func trendTabs(loc Localizer, group string, tabs []markettrends.Tab) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="tabs" data-tabs><div class="tab-list" role="tablist">`)
		for i, tab := range tabs {
			h.raw(`<button type="button" role="tab"`)
			h.attr("class", tabClass(i == 0))
			h.attr("data-tab", group+"-"+strconv.Itoa(i))
			h.attr("aria-selected", strconv.FormatBool(i == 0))
			h.raw(">")
			h.text(T(loc, tab.LabelKey))
			h.raw("</button>")
		}
		h.raw("</div>")
		for i, tab := range tabs {
			h.raw(`<div role="tabpanel"`)
			h.attr("data-tab-panel", group+"-"+strconv.Itoa(i))
			h.flag("hidden", i != 0)
			h.raw(">")
			h.component(ctx, ChartCanvas("chart-"+tab.Chart.ID, TrendChartConfig(loc, tab.Chart)))
			h.raw("</div>")
		}
		h.raw("</div>")
	})
}

func tabClass(active bool) string {
	if active {
		return "tab active"
	}
	return "tab"
}
