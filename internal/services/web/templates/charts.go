package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/dwelling.space/internal/markettrends"
)

// ChartDataset is one series of a ChartConfig.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
}

// ChartConfig is read by the chart script from a canvas data-chart
// attribute. Tooltip is a label template where {value} is replaced by the
// formatted point value.
type ChartConfig struct {
	Type     string         `json:"type"`
	Title    string         `json:"title,omitempty"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
	XTitle   string         `json:"xTitle,omitempty"`
	YTitle   string         `json:"yTitle,omitempty"`
	Tooltip  string         `json:"tooltip,omitempty"`
}

// ChartCanvas renders a canvas carrying its chart configuration.
func ChartCanvas(id string, cfg ChartConfig) templ.Component {
	return htmlComponent(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="chart"><canvas`)
		h.attr("id", id)
		h.json("data-chart", cfg)
		h.raw("></canvas></div>")
	})
}

// TrendChartConfig converts a dashboard chart into its rendered form.
func TrendChartConfig(loc Localizer, c markettrends.Chart) ChartConfig {
	cfg := ChartConfig{
		Type:   string(c.Kind),
		Title:  T(loc, c.TitleKey),
		Labels: c.Labels,
		Datasets: []ChartDataset{{
			Label:           T(loc, c.DatasetLabelKey),
			Data:            c.Values,
			BorderColor:     c.BorderColor,
			BackgroundColor: c.BackgroundColor,
			Fill:            c.Fill,
		}},
	}
	if c.XAxisKey != "" {
		cfg.XTitle = T(loc, c.XAxisKey)
	}
	if c.YAxisKey != "" {
		cfg.YTitle = T(loc, c.YAxisKey)
	}
	switch c.Tooltip {
	case markettrends.TooltipCurrency:
		cfg.Tooltip = T(loc, "web.format.aed", "{value}")
	case markettrends.TooltipUnits:
		cfg.Tooltip = T(loc, "trends.tooltip.units", "{value}")
	case markettrends.TooltipPercent:
		cfg.Tooltip = T(loc, "trends.tooltip.percent", "{value}")
	}
	return cfg
}
