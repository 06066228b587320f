package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/dwelling.space/internal/investment/cashflow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CashFlowInput represents the MCP tool input for a projection.
type CashFlowInput struct {
	PurchasePrice             float64 `json:"purchase_price" jsonschema:"property purchase price"`
	DownPaymentRatio          float64 `json:"down_payment_ratio" jsonschema:"down payment as a fraction of the price, 0 to 1"`
	AnnualInterestRatePercent float64 `json:"annual_interest_rate_percent" jsonschema:"annual loan interest rate in percent"`
	LoanTermYears             int     `json:"loan_term_years" jsonschema:"loan term in years, 1 to 100"`
	GrossRentalIncomeAnnual   float64 `json:"gross_rental_income_annual" jsonschema:"gross yearly rental income"`
	OperatingExpensesAnnual   float64 `json:"operating_expenses_annual" jsonschema:"yearly operating expenses"`
	VacancyRatePercent        float64 `json:"vacancy_rate_percent" jsonschema:"vacancy rate in percent"`
	AppreciationRatePercent   float64 `json:"appreciation_rate_percent" jsonschema:"yearly property appreciation in percent"`
	HoldingPeriodYears        int     `json:"holding_period_years" jsonschema:"number of years to project, 1 to 100"`
}

// MaxCashFlowYears bounds the loan term and holding period a caller may ask
// for.
const MaxCashFlowYears = 100

// ErrCashFlowYearsOutOfRange is returned for terms or holding periods above
// MaxCashFlowYears.
var ErrCashFlowYearsOutOfRange = errors.New("cash flow years out of range")

func (in CashFlowInput) validate() error {
	if in.LoanTermYears > MaxCashFlowYears {
		return fmt.Errorf("%w: loan_term_years %d exceeds %d", ErrCashFlowYearsOutOfRange, in.LoanTermYears, MaxCashFlowYears)
	}
	if in.HoldingPeriodYears > MaxCashFlowYears {
		return fmt.Errorf("%w: holding_period_years %d exceeds %d", ErrCashFlowYearsOutOfRange, in.HoldingPeriodYears, MaxCashFlowYears)
	}
	return nil
}

func (in CashFlowInput) assumptions() cashflow.LoanAssumptions {
	return cashflow.LoanAssumptions{
		PurchasePrice:             in.PurchasePrice,
		DownPaymentRatio:          in.DownPaymentRatio,
		AnnualInterestRatePercent: in.AnnualInterestRatePercent,
		LoanTermYears:             in.LoanTermYears,
		GrossRentalIncomeAnnual:   in.GrossRentalIncomeAnnual,
		OperatingExpensesAnnual:   in.OperatingExpensesAnnual,
		VacancyRatePercent:        in.VacancyRatePercent,
		AppreciationRatePercent:   in.AppreciationRatePercent,
		HoldingPeriodYears:        in.HoldingPeriodYears,
	}
}

// CashFlowResult represents the MCP tool output for a projection.
type CashFlowResult struct {
	MonthlyPayment    float64                  `json:"monthly_payment" jsonschema:"level monthly loan installment"`
	AnnualDebtService float64                  `json:"annual_debt_service" jsonschema:"twelve monthly installments"`
	Rows              []cashflow.ProjectionRow `json:"rows" jsonschema:"one row per projected year"`
}

// CashFlowTool defines the MCP tool schema for cash-flow projections.
func CashFlowTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "project_cash_flow",
		Description: "Projects yearly net operating income, cash flow and property value for a financed rental property",
	}
}

// CashFlowHandler projects the cash flow of the supplied assumptions.
func CashFlowHandler() mcp.ToolHandlerFor[CashFlowInput, CashFlowResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CashFlowInput) (*mcp.CallToolResult, CashFlowResult, error) {
		if err := input.validate(); err != nil {
			return nil, CashFlowResult{}, err
		}
		a := input.assumptions()
		rows, err := cashflow.Project(a)
		if err != nil {
			return nil, CashFlowResult{}, fmt.Errorf("project cash flow: %w", err)
		}
		monthly, err := cashflow.MonthlyPayment(a)
		if err != nil {
			return nil, CashFlowResult{}, fmt.Errorf("monthly payment: %w", err)
		}
		debtService, err := cashflow.AnnualDebtService(a)
		if err != nil {
			return nil, CashFlowResult{}, fmt.Errorf("annual debt service: %w", err)
		}
		return &mcp.CallToolResult{}, CashFlowResult{
			MonthlyPayment:    monthly,
			AnnualDebtService: debtService,
			Rows:              rows,
		}, nil
	}
}
