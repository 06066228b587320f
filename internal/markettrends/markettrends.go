// Package markettrends holds the static Dubai market dataset shown on the
// market trends dashboard.
package markettrends

// Area is one Dubai neighbourhood with its 2024 market figures.
type Area struct {
	Name             string
	PriceAED         float64
	PricePerSqftAED  float64
	SalesVolumeUnits float64
	PriceChangePct   float64
}

// ChartKind selects the chart type.
type ChartKind string

// Chart kinds.
const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// Tooltip selects how chart values are labelled.
type Tooltip string

// Tooltip formats.
const (
	TooltipCurrency Tooltip = "currency"
	TooltipUnits    Tooltip = "units"
	TooltipPercent  Tooltip = "percent"
)

// Chart describes one rendered chart. Keys are message keys.
type Chart struct {
	ID              string
	Kind            ChartKind
	TitleKey        string
	DatasetLabelKey string
	XAxisKey        string
	YAxisKey        string
	Tooltip         Tooltip
	Labels          []string
	Values          []float64
	BorderColor     string
	BackgroundColor string
	Fill            bool
}

// Tab is one selectable chart inside a section.
type Tab struct {
	LabelKey string
	Chart    Chart
}

// Section is a titled block of the dashboard. A section shows either tabs
// or a single chart.
type Section struct {
	ID       string
	TitleKey string
	BodyKey  string
	Tabs     []Tab
	Chart    *Chart
}

// Dashboard is the whole page.
type Dashboard struct {
	TitleKey    string
	IntroKey    string
	Sections    []Section
	InsightsKey string
	Insights    []string
}

var areas = []Area{
	{Name: "Dubai Marina", PriceAED: 1_200_000, PricePerSqftAED: 1500, SalesVolumeUnits: 150, PriceChangePct: 5},
	{Name: "Downtown Dubai", PriceAED: 1_500_000, PricePerSqftAED: 1800, SalesVolumeUnits: 180, PriceChangePct: 7},
	{Name: "Business Bay", PriceAED: 900_000, PricePerSqftAED: 1200, SalesVolumeUnits: 120, PriceChangePct: 4},
	{Name: "Palm Jumeirah", PriceAED: 3_000_000, PricePerSqftAED: 3500, SalesVolumeUnits: 90, PriceChangePct: 3},
	{Name: "Jumeirah Village Circle", PriceAED: 800_000, PricePerSqftAED: 1000, SalesVolumeUnits: 75, PriceChangePct: 6},
}

// Areas returns the dataset rows.
func Areas() []Area {
	return append([]Area(nil), areas...)
}

// BuildDashboard assembles the charts from the dataset.
func BuildDashboard() Dashboard {
	labels := make([]string, len(areas))
	for i, a := range areas {
		labels[i] = a.Name
	}
	column := func(pick func(Area) float64) []float64 {
		out := make([]float64, len(areas))
		for i, a := range areas {
			out[i] = pick(a)
		}
		return out
	}

	price := Chart{
		ID:              "price",
		Kind:            ChartLine,
		TitleKey:        "trends.chart.price_change_title",
		DatasetLabelKey: "trends.dataset.price",
		Tooltip:         TooltipCurrency,
		Labels:          labels,
		Values:          column(func(a Area) float64 { return a.PriceAED }),
		BorderColor:     "#FF6347",
		BackgroundColor: "rgba(255, 99, 71, 0.2)",
		Fill:            true,
	}
	perSqft := Chart{
		ID:              "price-per-sqft",
		Kind:            ChartLine,
		TitleKey:        "trends.chart.price_change_title",
		DatasetLabelKey: "trends.dataset.price_per_sqft",
		Tooltip:         TooltipCurrency,
		Labels:          labels,
		Values:          column(func(a Area) float64 { return a.PricePerSqftAED }),
		BorderColor:     "#1E90FF",
		BackgroundColor: "rgba(30, 144, 255, 0.2)",
		Fill:            true,
	}
	volume := Chart{
		ID:              "sales-volume",
		Kind:            ChartBar,
		TitleKey:        "trends.chart.sales_volume_title",
		DatasetLabelKey: "trends.dataset.sales_volume",
		XAxisKey:        "trends.axis.area",
		YAxisKey:        "trends.axis.units_sold",
		Tooltip:         TooltipUnits,
		Labels:          labels,
		Values:          column(func(a Area) float64 { return a.SalesVolumeUnits }),
		BorderColor:     "#388E3C",
		BackgroundColor: "#4CAF50",
	}
	change := Chart{
		ID:              "price-change",
		Kind:            ChartBar,
		TitleKey:        "trends.chart.price_change_pct_title",
		DatasetLabelKey: "trends.dataset.price_change",
		XAxisKey:        "trends.axis.area",
		YAxisKey:        "trends.axis.price_change",
		Tooltip:         TooltipPercent,
		Labels:          labels,
		Values:          column(func(a Area) float64 { return a.PriceChangePct }),
		BorderColor:     "#F57C00",
		BackgroundColor: "#FF9800",
	}

	return Dashboard{
		TitleKey: "trends.title",
		IntroKey: "trends.intro",
		Sections: []Section{
			{
				ID:       "price-by-area",
				TitleKey: "trends.section.price_by_area",
				BodyKey:  "trends.section.price_by_area_body",
				Tabs: []Tab{
					{LabelKey: "trends.tab.price", Chart: price},
					{LabelKey: "trends.tab.price_per_sqft", Chart: perSqft},
				},
			},
			{
				ID:       "sales-volume",
				TitleKey: "trends.section.sales_volume",
				BodyKey:  "trends.section.sales_volume_body",
				Chart:    &volume,
			},
			{
				ID:       "price-change",
				TitleKey: "trends.section.price_change",
				BodyKey:  "trends.section.price_change_body",
				Chart:    &change,
			},
		},
		InsightsKey: "trends.insights.title",
		Insights: []string{
			"trends.insights.investment",
			"trends.insights.innovation",
			"trends.insights.financing",
		},
	}
}
