// Package summary assembles the figures shown on a listing's investment
// page: the loan breakdown, headline tiles, analysis tables and the
// cash-flow projection.
//
// Only the projection is computed from the listing. The analysis tables are
// illustrative figures drawn around fixed reference values, so every render
// shows slightly different numbers.
package summary

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/louisbranch/dwelling.space/internal/investment/cashflow"
)

// Reference assumptions for a listing without financing data.
const (
	DefaultPurchasePrice       = 530_000_000
	DefaultDownPaymentRatio    = 0.2
	DefaultInterestRatePercent = 3.5
	DefaultLoanTermYears       = 30
	DefaultGrossRentalIncome   = 40_000_000
	DefaultOperatingExpenses   = 10_000_000
	DefaultVacancyRatePercent  = 5
	DefaultAppreciationPercent = 2
	DefaultHoldingPeriodYears  = 10
)

// USDToAED converts the USD reference figures of the analysis tables.
const USDToAED = 3.67

// Variance bands for illustrative figures.
const (
	StandardVariance = 0.05
	RehabVariance    = 0.10
)

// Format says how a Metric value is displayed.
type Format int

// Metric formats.
const (
	FormatNumber Format = iota
	FormatPercent
	FormatCurrency
)

// Metric is one row of an analysis table. Key is a message key.
type Metric struct {
	Key    string
	Value  float64
	Format Format
}

// Breakdown describes the loan.
type Breakdown struct {
	PurchasePrice       float64
	DownPayment         float64
	DownPaymentPercent  float64
	LoanAmount          float64
	LoanPercent         float64
	InterestRatePercent float64
	LoanTermYears       int
}

// Tiles are the four headline figures.
type Tiles struct {
	PurchasePrice           float64
	GrossRentalIncome       float64
	MonthlyCashFlow         float64
	CashOnCashReturnPercent float64
}

// Series is the projection reshaped for a line chart.
type Series struct {
	Years              []int     `json:"years"`
	NetOperatingIncome []float64 `json:"net_operating_income"`
	CashFlow           []float64 `json:"cash_flow"`
	PropertyValue      []float64 `json:"property_value"`
}

// Summary is everything the investment page renders.
type Summary struct {
	Assumptions       cashflow.LoanAssumptions
	Breakdown         Breakdown
	Tiles             Tiles
	FinancialAnalysis []Metric
	OperatingAnalysis []Metric
	AnnualDebtService float64
	Projection        []cashflow.ProjectionRow
}

// DefaultAssumptions returns the reference assumptions for a listing priced
// at price. A missing or zero price falls back to DefaultPurchasePrice, and so
// does a negative one: the projector rejects non-positive prices, and the page
// renders the reference figures instead of an error.
func DefaultAssumptions(price float64) cashflow.LoanAssumptions {
	if price <= 0 {
		price = DefaultPurchasePrice
	}
	return cashflow.LoanAssumptions{
		PurchasePrice:             price,
		DownPaymentRatio:          DefaultDownPaymentRatio,
		AnnualInterestRatePercent: DefaultInterestRatePercent,
		LoanTermYears:             DefaultLoanTermYears,
		GrossRentalIncomeAnnual:   DefaultGrossRentalIncome,
		OperatingExpensesAnnual:   DefaultOperatingExpenses,
		VacancyRatePercent:        DefaultVacancyRatePercent,
		AppreciationRatePercent:   DefaultAppreciationPercent,
		HoldingPeriodYears:        DefaultHoldingPeriodYears,
	}
}

// Build computes the summary for a listing priced at price. rng supplies the
// variance of the illustrative figures.
func Build(price float64, rng *rand.Rand) (Summary, error) {
	return BuildFrom(DefaultAssumptions(price), rng)
}

// BuildFrom computes the summary for explicit assumptions.
func BuildFrom(a cashflow.LoanAssumptions, rng *rand.Rand) (Summary, error) {
	if rng == nil {
		return Summary{}, fmt.Errorf("random source is required")
	}
	rows, err := cashflow.Project(a)
	if err != nil {
		return Summary{}, fmt.Errorf("project cash flow: %w", err)
	}
	debtService, err := cashflow.AnnualDebtService(a)
	if err != nil {
		return Summary{}, fmt.Errorf("annual debt service: %w", err)
	}

	tiles := BuildTiles(a)
	return Summary{
		Assumptions:       a,
		Breakdown:         BuildBreakdown(a),
		Tiles:             tiles,
		FinancialAnalysis: financialAnalysis(tiles.CashOnCashReturnPercent, rng),
		OperatingAnalysis: operatingAnalysis(a.GrossRentalIncomeAnnual, rng),
		AnnualDebtService: debtService,
		Projection:        rows,
	}, nil
}

// BuildBreakdown describes the loan behind a.
func BuildBreakdown(a cashflow.LoanAssumptions) Breakdown {
	return Breakdown{
		PurchasePrice:       a.PurchasePrice,
		DownPayment:         a.DownPayment(),
		DownPaymentPercent:  a.DownPaymentRatio * 100,
		LoanAmount:          a.LoanAmount(),
		LoanPercent:         (1 - a.DownPaymentRatio) * 100,
		InterestRatePercent: a.AnnualInterestRatePercent,
		LoanTermYears:       a.LoanTermYears,
	}
}

// BuildTiles computes the headline figures. The monthly cash flow tile
// subtracts one month of interest-only debt service from the annual net
// income and floors the result at zero; cash on cash divides the annual net
// income before vacancy and financing by the down payment.
func BuildTiles(a cashflow.LoanAssumptions) Tiles {
	net := a.GrossRentalIncomeAnnual - a.OperatingExpensesAnnual
	monthlyInterest := a.LoanAmount() * a.AnnualInterestRatePercent / 100 / 12
	tiles := Tiles{
		PurchasePrice:     a.PurchasePrice,
		GrossRentalIncome: a.GrossRentalIncomeAnnual,
		MonthlyCashFlow:   math.Max(net-monthlyInterest, 0),
	}
	if down := a.DownPayment(); down != 0 {
		tiles.CashOnCashReturnPercent = net / down * 100
	}
	return tiles
}

// Series reshapes the projection for charting.
func (s Summary) Series() Series {
	out := Series{
		Years:              make([]int, len(s.Projection)),
		NetOperatingIncome: make([]float64, len(s.Projection)),
		CashFlow:           make([]float64, len(s.Projection)),
		PropertyValue:      make([]float64, len(s.Projection)),
	}
	for i, row := range s.Projection {
		out.Years[i] = row.Year
		out.NetOperatingIncome[i] = round2(row.NetOperatingIncome)
		out.CashFlow[i] = round2(row.CashFlow)
		out.PropertyValue[i] = round2(row.PropertyValue)
	}
	return out
}

// Vary returns a value drawn uniformly from base*(1±variance), rounded to
// two decimals.
func Vary(rng *rand.Rand, base, variance float64) float64 {
	low := base * (1 - variance)
	high := base * (1 + variance)
	return round2(low + rng.Float64()*(high-low))
}

func financialAnalysis(cashOnCash float64, rng *rand.Rand) []Metric {
	return []Metric{
		{Key: "investment.metric.cash_on_cash", Value: round2(cashOnCash), Format: FormatPercent},
		{Key: "investment.metric.irr", Value: Vary(rng, 15.69, StandardVariance), Format: FormatPercent},
		{Key: "investment.metric.cap_rate", Value: Vary(rng, 457, StandardVariance), Format: FormatPercent},
		{Key: "investment.metric.grm", Value: Vary(rng, 13.89, StandardVariance), Format: FormatNumber},
		{Key: "investment.metric.dcr", Value: Vary(rng, 1.35, StandardVariance), Format: FormatNumber},
		{Key: "investment.metric.oer", Value: Vary(rng, 33.22, StandardVariance), Format: FormatPercent},
		{Key: "investment.metric.arv", Value: Vary(rng, 150_000*USDToAED, RehabVariance), Format: FormatCurrency},
		{Key: "investment.metric.rehab_equity", Value: Vary(rng, 38_000*USDToAED, RehabVariance), Format: FormatCurrency},
	}
}

func operatingAnalysis(grossRent float64, rng *rand.Rand) []Metric {
	usd := func(v float64) float64 { return Vary(rng, v*USDToAED, StandardVariance) }
	return []Metric{
		{Key: "investment.metric.rent", Value: grossRent, Format: FormatCurrency},
		{Key: "investment.metric.goi", Value: usd(10_260), Format: FormatCurrency},
		{Key: "investment.metric.total_expenses", Value: usd(3_409), Format: FormatCurrency},
		{Key: "investment.metric.noi", Value: usd(6_851), Format: FormatCurrency},
		{Key: "investment.metric.annual_debt_service", Value: usd(5_087), Format: FormatCurrency},
		{Key: "investment.metric.cfbt", Value: usd(1_764), Format: FormatCurrency},
		{Key: "investment.metric.income_tax", Value: usd(323), Format: FormatCurrency},
		{Key: "investment.metric.cfat", Value: usd(1_441), Format: FormatCurrency},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
