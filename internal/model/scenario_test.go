package model

import (
	"errors"
	"testing"
)

func TestScenario_DecimalRates(t *testing.T) {
	sc := Scenario{
		LoanRatePct:             3.7,
		AppreciationRatePct:     2,
		MaintenanceInflationPct: 2,
		RentInflationPct:        2,
		SellTaxRatePct:          36,
		SalaryGrowthPct:         2,
		OpportunityCostRatePct:  1,
	}
	rates := sc.DecimalRates()

	if rates.Loan != 0.037 {
		t.Errorf("loan rate: expected 0.037, got %v", rates.Loan)
	}
	if rates.SellTax != 0.36 {
		t.Errorf("sell tax: expected 0.36, got %v", rates.SellTax)
	}
	if rates.OpportunityCost != 0.01 {
		t.Errorf("opportunity cost: expected 0.01, got %v", rates.OpportunityCost)
	}
}

func TestScenario_Validate(t *testing.T) {
	valid := Scenario{
		HouseValue:    300000,
		LoanFraction:  0.7,
		LoanRatePct:   3.7,
		LoanTermYears: 20,
		HorizonYears:  30,
		InitialRent:   15000,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"zero house value", func(s *Scenario) { s.HouseValue = 0 }},
		{"negative loan rate", func(s *Scenario) { s.LoanRatePct = -1 }},
		{"loan fraction above one", func(s *Scenario) { s.LoanFraction = 1.1 }},
		{"zero term", func(s *Scenario) { s.LoanTermYears = 0 }},
		{"zero horizon", func(s *Scenario) { s.HorizonYears = 0 }},
		{"negative rent", func(s *Scenario) { s.InitialRent = -1 }},
	}
	for _, tc := range cases {
		sc := valid
		tc.mutate(&sc)
		if err := sc.Validate(); !errors.Is(err, ErrDomain) {
			t.Errorf("%s: expected ErrDomain, got %v", tc.name, err)
		}
	}
}

func TestPhaseForYear(t *testing.T) {
	if got := PhaseForYear(3, 10); got != PhaseHolding {
		t.Errorf("year 3 of sellYear 10: expected HOLDING, got %s", got)
	}
	if got := PhaseForYear(10, 10); got != PhaseSale {
		t.Errorf("year 10 of sellYear 10: expected SALE, got %s", got)
	}
	if got := PhaseForYear(11, 10); got != PhaseSold {
		t.Errorf("year 11 of sellYear 10: expected SOLD, got %s", got)
	}
}
