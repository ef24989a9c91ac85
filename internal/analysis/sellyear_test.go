package analysis

import (
	"testing"

	"rent-vs-buy/internal/model"
	"rent-vs-buy/internal/simulate"
)

func testScenario() model.Scenario {
	return model.Scenario{
		HouseValue:              300000,
		LoanFraction:            0.7,
		LoanRatePct:             3.7,
		LoanTermYears:           20,
		AppreciationRatePct:     2,
		InitialMaintenance:      1000,
		MaintenanceInflationPct: 2,
		InitialRent:             15000,
		RentInflationPct:        2,
		SellTaxRatePct:          36,
		HorizonYears:            15,
		InitialInvestment:       5000,
		AnnualSalary:            60000,
		SalaryGrowthPct:         2,
		OpportunityCostRatePct:  1,
		AnnualExpenditure:       15000,
		SellYear:                10,
		Method:                  model.MethodAnnuity,
	}
}

func TestRankSellYears_CoversHorizonSortedByFinalCash(t *testing.T) {
	ranked, err := RankSellYears(testScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 15 {
		t.Fatalf("expected one outcome per year, got %d", len(ranked))
	}

	seen := map[int]bool{}
	for i, o := range ranked {
		if o.SellYear < 1 || o.SellYear > 15 {
			t.Errorf("sell year %d out of range", o.SellYear)
		}
		if seen[o.SellYear] {
			t.Errorf("sell year %d ranked twice", o.SellYear)
		}
		seen[o.SellYear] = true
		if i > 0 && o.FinalNetCash > ranked[i-1].FinalNetCash {
			t.Errorf("rank %d: outcomes not sorted descending", i+1)
		}
	}
}

func TestRankSellYears_MatchesDirectSimulation(t *testing.T) {
	sc := testScenario()
	ranked, err := RankSellYears(sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-run the best candidate directly and compare.
	best := ranked[0]
	sc.Mode = model.ModeCashFlow
	sc.SellYear = best.SellYear
	res, err := simulate.New().Run(sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	series := res.CashFlow.BuyAndSellSeries
	if series[len(series)-1] != best.FinalNetCash {
		t.Errorf("expected final cash %.6f, got %.6f", series[len(series)-1], best.FinalNetCash)
	}
	if series[best.SellYear-1] != best.SaleYearCash {
		t.Errorf("expected sale-year cash %.6f, got %.6f", series[best.SellYear-1], best.SaleYearCash)
	}
}

func TestRankSellYears_PropagatesEngineErrors(t *testing.T) {
	sc := testScenario()
	sc.HouseValue = 0
	if _, err := RankSellYears(sc); err == nil {
		t.Fatal("expected a domain error")
	}
}
