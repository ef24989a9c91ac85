package simulate

import (
	"errors"
	"math"
	"testing"

	"rent-vs-buy/internal/model"
)

func refCashFlow(t *testing.T, sellYear int) CashFlowInputs {
	t.Helper()
	loan := refLoan(t)
	horizon := 30
	return CashFlowInputs{
		Salary:              60000,
		SalaryGrowth:        0.02,
		OpportunityCostRate: 0.01,
		Schedule:            loan.Schedule,
		InitialRent:         15000,
		RentInflation:       0.02,
		HorizonYears:        horizon,
		InitialInvestment:   5000,
		MaintenanceCosts:    MaintenanceSeries(1000, 0.02, horizon),
		Expenditure:         15000,
		SaleProceeds:        RawSaleProceedsSeries(300000, 0.02, 0.36, horizon),
		SellYear:            sellYear,
	}
}

func TestSimulateCashFlow_SeriesLengths(t *testing.T) {
	res, err := SimulateCashFlow(refCashFlow(t, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.RentSeries) != 30 || len(res.BuySeries) != 30 || len(res.BuyAndSellSeries) != 30 {
		t.Fatalf("expected 30-entry series, got %d/%d/%d",
			len(res.RentSeries), len(res.BuySeries), len(res.BuyAndSellSeries))
	}
	if len(res.Ledger) != 30 {
		t.Fatalf("expected 30 ledger rows, got %d", len(res.Ledger))
	}
}

func TestSimulateCashFlow_SalaryCompoundsFromYearOne(t *testing.T) {
	in := refCashFlow(t, 1)
	in.HorizonYears = 1
	in.MaintenanceCosts = in.MaintenanceCosts[:1]
	in.SaleProceeds = in.SaleProceeds[:1]

	res, err := SimulateCashFlow(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Growth applies before year 1's net savings.
	salary := 60000 * 1.02
	netSavings := salary - 15000
	wantRent := (5000 + netSavings - 15000) * 1.01
	if math.Abs(res.RentSeries[0]-wantRent) > 1e-9 {
		t.Errorf("rent year 1: expected %.6f, got %.6f", wantRent, res.RentSeries[0])
	}
}

func TestSimulateCashFlow_PreSaleMirrorsBuyBranch(t *testing.T) {
	sellYear := 10
	res, err := SimulateCashFlow(refCashFlow(t, sellYear))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 1; y < sellYear; y++ {
		if res.BuyAndSellSeries[y-1] != res.BuySeries[y-1] {
			t.Errorf("year %d: pre-sale value %.6f should equal buy branch %.6f",
				y, res.BuyAndSellSeries[y-1], res.BuySeries[y-1])
		}
		if res.Ledger[y-1].Phase != model.PhaseHolding {
			t.Errorf("year %d: expected HOLDING, got %s", y, res.Ledger[y-1].Phase)
		}
	}
}

func TestSimulateCashFlow_SaleYearRealizesProceedsOnce(t *testing.T) {
	sellYear := 10
	in := refCashFlow(t, sellYear)
	res, err := SimulateCashFlow(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := res.BuySeries[sellYear-1] +
		in.SaleProceeds[sellYear-1] -
		in.Schedule.RemainingAfterYear(sellYear)
	if math.Abs(res.BuyAndSellSeries[sellYear-1]-want) > 1e-9 {
		t.Errorf("sale year: expected %.6f, got %.6f", want, res.BuyAndSellSeries[sellYear-1])
	}
	if res.Ledger[sellYear-1].Phase != model.PhaseSale {
		t.Errorf("expected SALE phase in year %d", sellYear)
	}
	if res.Ledger[sellYear-1].SaleProceeds != in.SaleProceeds[sellYear-1] {
		t.Errorf("ledger should carry the sale proceeds in the sale year")
	}

	// Post-sale years roll forward from the previous value; proceeds are
	// never incorporated again and the mortgage no longer applies.
	for y := sellYear + 1; y <= in.HorizonYears; y++ {
		row := res.Ledger[y-1]
		if row.Phase != model.PhaseSold {
			t.Fatalf("year %d: expected SOLD, got %s", y, row.Phase)
		}
		if row.SaleProceeds != 0 {
			t.Errorf("year %d: proceeds must only appear in the sale year", y)
		}
		prev := res.BuyAndSellSeries[y-2]
		wantPost := (prev + row.NetSavings - in.MaintenanceCosts[y-1]) * 1.01
		if math.Abs(res.BuyAndSellSeries[y-1]-wantPost) > 1e-9 {
			t.Errorf("year %d: expected %.6f, got %.6f", y, wantPost, res.BuyAndSellSeries[y-1])
		}
	}
}

func TestSimulateCashFlow_InvalidSellYear(t *testing.T) {
	for _, sellYear := range []int{0, -3, 31} {
		in := refCashFlow(t, sellYear)
		if _, err := SimulateCashFlow(in); !errors.Is(err, ErrInvalidSellYear) {
			t.Errorf("sellYear %d: expected ErrInvalidSellYear, got %v", sellYear, err)
		}
	}
}

func TestSimulateCashFlow_SellYearEqualsHorizon(t *testing.T) {
	in := refCashFlow(t, 30)
	res, err := SimulateCashFlow(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ledger[29].Phase != model.PhaseSale {
		t.Errorf("expected SALE in the final year, got %s", res.Ledger[29].Phase)
	}
}
