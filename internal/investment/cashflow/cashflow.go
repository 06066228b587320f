// Package cashflow projects the yearly operating result of a leveraged
// rental property.
//
// The projection uses a fixed-rate, fully amortizing loan. Debt service and
// net operating income are held flat for every projected year; only the
// property value grows, compounding at the appreciation rate.
package cashflow

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAssumptions is returned when a projection cannot be computed
// from the supplied assumptions.
var ErrInvalidAssumptions = errors.New("invalid loan assumptions")

// LoanAssumptions are the inputs of a projection. Monetary values share one
// currency unit; rates are percentages except DownPaymentRatio, which is a
// fraction of the purchase price.
type LoanAssumptions struct {
	PurchasePrice             float64 `json:"purchase_price"`
	DownPaymentRatio          float64 `json:"down_payment_ratio"`
	AnnualInterestRatePercent float64 `json:"annual_interest_rate_percent"`
	LoanTermYears             int     `json:"loan_term_years"`
	GrossRentalIncomeAnnual   float64 `json:"gross_rental_income_annual"`
	OperatingExpensesAnnual   float64 `json:"operating_expenses_annual"`
	VacancyRatePercent        float64 `json:"vacancy_rate_percent"`
	AppreciationRatePercent   float64 `json:"appreciation_rate_percent"`
	HoldingPeriodYears        int     `json:"holding_period_years"`
}

// DownPayment returns the equity paid at purchase.
func (a LoanAssumptions) DownPayment() float64 {
	return a.PurchasePrice * a.DownPaymentRatio
}

// LoanAmount returns the financed principal.
func (a LoanAssumptions) LoanAmount() float64 {
	return a.PurchasePrice - a.DownPayment()
}

// Validate reports whether a projection can be computed from a.
func (a LoanAssumptions) Validate() error {
	switch {
	case a.LoanTermYears <= 0:
		return fmt.Errorf("%w: loan term must be positive, got %d years", ErrInvalidAssumptions, a.LoanTermYears)
	case a.HoldingPeriodYears <= 0:
		return fmt.Errorf("%w: holding period must be positive, got %d years", ErrInvalidAssumptions, a.HoldingPeriodYears)
	case a.PurchasePrice <= 0:
		return fmt.Errorf("%w: purchase price must be positive, got %v", ErrInvalidAssumptions, a.PurchasePrice)
	}
	return nil
}

// ProjectionRow is the operating result of one holding year.
type ProjectionRow struct {
	Year               int     `json:"year"`
	NetOperatingIncome float64 `json:"net_operating_income"`
	CashFlow           float64 `json:"cash_flow"`
	PropertyValue      float64 `json:"property_value"`
}

// MonthlyPayment returns the level monthly installment that repays the loan
// over the full term.
func MonthlyPayment(a LoanAssumptions) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return monthlyPayment(a), nil
}

// AnnualDebtService returns twelve monthly installments.
func AnnualDebtService(a LoanAssumptions) (float64, error) {
	payment, err := MonthlyPayment(a)
	if err != nil {
		return 0, err
	}
	return payment * 12, nil
}

// Project returns one row per holding year, starting at year 1.
func Project(a LoanAssumptions) ([]ProjectionRow, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	debtService := monthlyPayment(a) * 12
	vacancyLoss := a.GrossRentalIncomeAnnual * (a.VacancyRatePercent / 100)
	noi := a.GrossRentalIncomeAnnual - vacancyLoss - a.OperatingExpensesAnnual
	growth := 1 + a.AppreciationRatePercent/100

	rows := make([]ProjectionRow, 0, a.HoldingPeriodYears)
	for year := 1; year <= a.HoldingPeriodYears; year++ {
		rows = append(rows, ProjectionRow{
			Year:               year,
			NetOperatingIncome: noi,
			CashFlow:           noi - debtService,
			PropertyValue:      a.PurchasePrice * math.Pow(growth, float64(year)),
		})
	}
	return rows, nil
}

func monthlyPayment(a LoanAssumptions) float64 {
	loan := a.LoanAmount()
	rate := a.AnnualInterestRatePercent / 100 / 12
	n := float64(a.LoanTermYears * 12)
	if rate == 0 {
		return loan / n
	}
	return loan * rate / (1 - math.Pow(1+rate, -n))
}
