package simulate

import (
	"math"
	"testing"
)

func TestRawSaleProceeds_FirstYearHasNoAppreciation(t *testing.T) {
	// Exponent is year-1, so selling in year 1 realizes the bare house value:
	// no appreciation, no profit, no tax.
	got := RawSaleProceeds(300000, 0.02, 0.36, 1)
	if got != 300000 {
		t.Errorf("expected 300000, got %.2f", got)
	}
}

func TestRawSaleProceeds_TaxOnProfitOnly(t *testing.T) {
	year := 10
	value := 300000 * math.Pow(1.02, float64(year-1))
	profit := value - 300000
	want := value - profit*0.36

	got := RawSaleProceeds(300000, 0.02, 0.36, year)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %.6f, got %.6f", want, got)
	}
}

func TestNetSaleProceeds_UsesFullYearExponentAndSubtractsOwnCost(t *testing.T) {
	year := 10
	ownCost := 150000.0
	value := 300000 * math.Pow(1.02, float64(year))
	profit := value - 300000
	want := value - ownCost - profit*0.36

	got := NetSaleProceeds(300000, 0.02, 0.36, ownCost, year)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %.6f, got %.6f", want, got)
	}
}

func TestSaleProceeds_ExponentConventionsDiffer(t *testing.T) {
	// The two variants use different appreciation exponents; with zero sunk
	// cost and zero tax they must still disagree by one year of appreciation.
	year := 5
	raw := RawSaleProceeds(300000, 0.02, 0, year)
	net := NetSaleProceeds(300000, 0.02, 0, 0, year)
	if math.Abs(net/raw-1.02) > 1e-12 {
		t.Errorf("expected net/raw == 1.02 (one extra year of appreciation), got %v", net/raw)
	}
}

func TestRawSaleProceedsSeries_Length(t *testing.T) {
	series := RawSaleProceedsSeries(300000, 0.02, 0.36, 30)
	if len(series) != 30 {
		t.Fatalf("expected 30 entries, got %d", len(series))
	}
	if series[0] != 300000 {
		t.Errorf("year 1: expected 300000, got %.2f", series[0])
	}
}

func TestNetSaleProceedsByYear_RoundsToCents(t *testing.T) {
	ownSeries := []float64{20875.294947, 40000.123456}
	byYear := NetSaleProceedsByYear(300000, 0.02, 0.36, ownSeries)

	if len(byYear) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(byYear))
	}
	for year, v := range byYear {
		if round2(v) != v {
			t.Errorf("year %d: value %v is not rounded to cents", year, v)
		}
		want := round2(NetSaleProceeds(300000, 0.02, 0.36, ownSeries[year-1], year))
		if v != want {
			t.Errorf("year %d: expected %.2f, got %.2f", year, want, v)
		}
	}
}
