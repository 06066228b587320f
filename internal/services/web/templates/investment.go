package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/investment/summary"
	"github.com/louisbranch/dwelling.space/internal/listings"
	"github.com/louisbranch/dwelling.space/internal/services/web/routepath"
)

const sampleYearBuilt = "2021"

// InvestmentPage renders the investment summary of a listing.
func InvestmentPage(loc Localizer, p listings.Property, s summary.Summary) templ.Component {
	return htmlComponent(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<article class="investment">`)
		h.component(ctx, investmentOverview(loc, p))
		h.component(ctx, investmentTiles(loc, s.Tiles))

		h.raw(`<div class="two-column">`)
		h.component(ctx, metricTable(loc, T(loc, "investment.financial.title"), s.FinancialAnalysis))
		h.component(ctx, metricTable(loc, T(loc, "investment.operating.title"), s.OperatingAnalysis))
		h.raw(`</div><div class="two-column">`)
		h.component(ctx, breakdownTable(loc, s.Breakdown))
		h.raw(`<section><h2>`)
		h.text(T(loc, "investment.chart.title"))
		h.raw("</h2>")
		h.component(ctx, ChartCanvas("chart-cash-flow", cashFlowChart(loc, s.Series())))
		h.raw(`</section></div>`)

		h.component(ctx, projectionTable(loc, s))

		h.raw(`<div class="two-column"><section><h2>`)
		h.text(T(loc, "investment.description.title"))
		h.raw(`</h2><p class="muted">`)
		if description := strings.TrimSpace(p.Description); description != "" {
			h.text(description)
		} else {
			h.text(T(loc, "investment.description.missing"))
		}
		h.raw("</p></section>")
		if p.Geography.Valid() {
			h.raw("<section><h2>")
			h.text(T(loc, "property.location.title"))
			h.raw("</h2>")
			h.component(ctx, ListingMap(p.Geography, p.Title))
			h.raw("</section>")
		}
		h.raw(`</div><p><a class="link-button"`)
		h.url("href", routepath.Property(ListingID(p)))
		h.raw(">")
		h.text(T(loc, "investment.back"))
		h.raw("</a></p></article>")
	})
}

func investmentOverview(loc Localizer, p listings.Property) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			title = T(loc, "investment.overview.not_available")
		}
		size := T(loc, "investment.overview.size_missing")
		if p.Area > 0 {
			size = T(loc, "investment.overview.size_value", Fixed2(loc, p.Area))
		}
		h.raw(`<section class="two-column investment-overview"><div><h1>`)
		h.text(title)
		h.raw("</h1><p>")
		h.text(T(loc, "investment.overview.condominium", p.Rooms, p.Baths))
		h.raw("</p><p>")
		h.text(T(loc, "investment.overview.year_built", sampleYearBuilt))
		h.raw("</p><p>")
		h.text(T(loc, "investment.overview.size", size))
		h.raw("</p><p>")
		h.text(T(loc, "investment.overview.strategy", orNA(loc, Capitalize(p.Purpose)), orNA(loc, Capitalize(p.Type))))
		h.raw("</p><p>")
		h.text(T(loc, "investment.overview.sample_report"))
		h.raw("</p></div><div>")
		if cover := p.CoverURL(); cover != "" {
			h.raw(`<img class="investment-cover"`)
			h.url("src", cover)
			if title := strings.TrimSpace(p.Title); title != "" {
				h.attr("alt", title)
			} else {
				h.attr("alt", T(loc, "investment.overview.image_alt"))
			}
			h.raw(">")
		} else {
			h.raw("<p>")
			h.text(T(loc, "investment.overview.no_image"))
			h.raw("</p>")
		}
		h.raw("</div></section>")
	})
}

func investmentTiles(loc Localizer, tiles summary.Tiles) templ.Component {
	type tile struct {
		class string
		value string
		label string
	}
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		items := []tile{
			{class: "tile-price", value: AED(loc, tiles.PurchasePrice), label: T(loc, "investment.tile.purchase_price")},
			{class: "tile-rent", value: AED(loc, tiles.GrossRentalIncome), label: T(loc, "investment.tile.gross_rent")},
			{class: "tile-cash-flow", value: AED(loc, tiles.MonthlyCashFlow), label: T(loc, "investment.tile.monthly_cash_flow")},
			{class: "tile-coc", value: Percent(loc, tiles.CashOnCashReturnPercent), label: T(loc, "investment.tile.cash_on_cash")},
		}
		h.raw(`<section class="tiles">`)
		for _, item := range items {
			h.raw("<div")
			h.attr("class", "tile "+item.class)
			h.raw("><strong>")
			h.text(item.value)
			h.raw("</strong><span>")
			h.text(item.label)
			h.raw("</span></div>")
		}
		h.raw("</section>")
	})
}

// Percent formats v as a percentage with two decimals.
func Percent(loc Localizer, v float64) string {
	return T(loc, "web.format.percent", Fixed2(loc, v))
}

// MetricValue formats one analysis metric.
func MetricValue(loc Localizer, m summary.Metric) string {
	switch m.Format {
	case summary.FormatPercent:
		return Percent(loc, m.Value)
	case summary.FormatCurrency:
		return T(loc, "web.format.aed", Fixed2(loc, m.Value))
	default:
		return Fixed2(loc, m.Value)
	}
}

func metricTable(loc Localizer, title string, metrics []summary.Metric) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw("<section><h2>")
		h.text(title)
		h.raw(`</h2><table class="data-table"><tbody>`)
		for _, m := range metrics {
			h.raw("<tr><th scope=\"row\">")
			h.text(T(loc, m.Key))
			h.raw("</th><td>")
			h.text(MetricValue(loc, m))
			h.raw("</td></tr>")
		}
		h.raw("</tbody></table></section>")
	})
}

func breakdownTable(loc Localizer, b summary.Breakdown) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		rows := [][2]string{
			{T(loc, "investment.breakdown.purchase_price"), AED(loc, b.PurchasePrice)},
			{T(loc, "investment.breakdown.down_payment", Number(loc, b.DownPaymentPercent)), AED(loc, b.DownPayment)},
			{T(loc, "investment.breakdown.loan_amount", Number(loc, b.LoanPercent)), AED(loc, b.LoanAmount)},
			{T(loc, "investment.breakdown.interest_rate"), T(loc, "web.format.percent", Number(loc, b.InterestRatePercent))},
			{T(loc, "investment.breakdown.loan_term"), T(loc, "investment.breakdown.years", b.LoanTermYears)},
		}
		h.raw("<section><h2>")
		h.text(T(loc, "investment.breakdown.title"))
		h.raw(`</h2><table class="data-table"><tbody>`)
		for _, row := range rows {
			h.raw("<tr><th scope=\"row\">")
			h.text(row[0])
			h.raw("</th><td>")
			h.text(row[1])
			h.raw("</td></tr>")
		}
		h.raw("</tbody></table></section>")
	})
}

func projectionTable(loc Localizer, s summary.Summary) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="projection"><h2>`)
		h.text(T(loc, "investment.projection.title"))
		h.raw(`</h2><p class="muted">`)
		h.text(T(loc, "investment.projection.debt_service", AED(loc, s.AnnualDebtService)))
		h.raw(`</p><table class="data-table"><thead><tr><th scope="col">`)
		h.text(T(loc, "investment.projection.year"))
		h.raw(`</th><th scope="col">`)
		h.text(T(loc, "investment.projection.noi"))
		h.raw(`</th><th scope="col">`)
		h.text(T(loc, "investment.projection.cash_flow"))
		h.raw(`</th><th scope="col">`)
		h.text(T(loc, "investment.projection.property_value"))
		h.raw("</th></tr></thead><tbody>")
		for _, row := range s.Projection {
			h.raw("<tr><td>")
			h.text(strconv.Itoa(row.Year))
			h.raw("</td><td>")
			h.text(AED(loc, row.NetOperatingIncome))
			h.raw("</td><td>")
			h.text(AED(loc, row.CashFlow))
			h.raw("</td><td>")
			h.text(AED(loc, row.PropertyValue))
			h.raw("</td></tr>")
		}
		h.raw("</tbody></table></section>")
	})
}

func cashFlowChart(loc Localizer, series summary.Series) ChartConfig {
	labels := make([]string, len(series.Years))
	for i, year := range series.Years {
		labels[i] = strconv.Itoa(year)
	}
	return ChartConfig{
		Type:   "line",
		Labels: labels,
		XTitle: T(loc, "investment.chart.year"),
		Datasets: []ChartDataset{
			{Label: T(loc, "investment.chart.noi"), Data: series.NetOperatingIncome, BorderColor: "#82ca9d"},
			{Label: T(loc, "investment.chart.cash_flow"), Data: series.CashFlow, BorderColor: "#ff7300"},
		},
		Tooltip: T(loc, "web.format.aed", "{value}"),
	}
}

func orNA(loc Localizer, s string) string {
	if s == "" {
		return T(loc, "investment.overview.na")
	}
	return s
}
