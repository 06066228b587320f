package domain

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/louisbranch/dwelling.space/internal/investment/cashflow"
)

func referenceInput() CashFlowInput {
	return CashFlowInput{
		PurchasePrice:             530_000_000,
		DownPaymentRatio:          0.2,
		AnnualInterestRatePercent: 3.5,
		LoanTermYears:             30,
		GrossRentalIncomeAnnual:   40_000_000,
		OperatingExpensesAnnual:   10_000_000,
		VacancyRatePercent:        5,
		AppreciationRatePercent:   2,
		HoldingPeriodYears:        10,
	}
}

func TestCashFlowHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		toolResult, result, err := CashFlowHandler()(context.Background(), nil, referenceInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil {
			t.Fatal("expected non-nil tool result")
		}
		if len(result.Rows) != 10 {
			t.Fatalf("rows = %d, want 10", len(result.Rows))
		}
		if got := result.Rows[0].PropertyValue; math.Abs(got-540_600_000) > 1e-3 {
			t.Errorf("year 1 value = %v, want 540600000", got)
		}
		if math.Abs(result.AnnualDebtService-12*result.MonthlyPayment) > 1e-6 {
			t.Errorf("debt service %v != 12 * %v", result.AnnualDebtService, result.MonthlyPayment)
		}
	})

	t.Run("years out of range", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CashFlowInput)
		}{
			{name: "huge holding period", mutate: func(in *CashFlowInput) { in.HoldingPeriodYears = 1 << 50 }},
			{name: "holding period just above max", mutate: func(in *CashFlowInput) { in.HoldingPeriodYears = MaxCashFlowYears + 1 }},
			{name: "huge loan term", mutate: func(in *CashFlowInput) { in.LoanTermYears = 1 << 31 }},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				input := referenceInput()
				tc.mutate(&input)
				_, result, err := CashFlowHandler()(context.Background(), nil, input)
				if !errors.Is(err, ErrCashFlowYearsOutOfRange) {
					t.Fatalf("err = %v, want ErrCashFlowYearsOutOfRange", err)
				}
				if len(result.Rows) != 0 {
					t.Fatalf("rows = %d, want none", len(result.Rows))
				}
			})
		}
	})

	t.Run("max holding period", func(t *testing.T) {
		input := referenceInput()
		input.HoldingPeriodYears = MaxCashFlowYears
		_, result, err := CashFlowHandler()(context.Background(), nil, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Rows) != MaxCashFlowYears {
			t.Fatalf("rows = %d, want %d", len(result.Rows), MaxCashFlowYears)
		}
	})

	t.Run("invalid assumptions", func(t *testing.T) {
		input := referenceInput()
		input.LoanTermYears = 0
		_, _, err := CashFlowHandler()(context.Background(), nil, input)
		if !errors.Is(err, cashflow.ErrInvalidAssumptions) {
			t.Fatalf("err = %v, want ErrInvalidAssumptions", err)
		}
	})
}
