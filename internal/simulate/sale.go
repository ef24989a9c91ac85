package simulate

import "math"

// The two proceeds functions below use different appreciation exponents
// (year-1 vs year) and are not interchangeable. The divergence is historical:
// each has a call site whose numbers depend on its convention, so both are
// kept as distinct operations instead of being unified.

// RawSaleProceeds is the net cash from selling in the given year with no
// ownership costs subtracted: appreciated value minus sale tax on the profit.
// Appreciation exponent is year-1. This variant feeds the cash-flow
// simulator.
func RawSaleProceeds(houseValue, appreciationRate, sellTaxRate float64, year int) float64 {
	value := houseValue * math.Pow(1+appreciationRate, float64(year-1))
	profit := value - houseValue
	return value - profit*sellTaxRate
}

// RawSaleProceedsSeries returns RawSaleProceeds for years 1..horizonYears.
// Index 0 is year 1.
func RawSaleProceedsSeries(houseValue, appreciationRate, sellTaxRate float64, horizonYears int) []float64 {
	out := make([]float64, horizonYears)
	for i := range out {
		out[i] = RawSaleProceeds(houseValue, appreciationRate, sellTaxRate, i+1)
	}
	return out
}

// NetSaleProceeds is the net cash from selling in the given year after also
// subtracting the cumulative owning cost already sunk by then. Appreciation
// exponent is year. This variant is the break-even reporting figure.
func NetSaleProceeds(houseValue, appreciationRate, sellTaxRate, ownCostAtYear float64, year int) float64 {
	value := houseValue * math.Pow(1+appreciationRate, float64(year))
	profit := value - houseValue
	tax := profit * sellTaxRate
	return value - ownCostAtYear - tax
}

// NetSaleProceedsByYear maps each year of the owning-cost series to its
// NetSaleProceeds, rounded to cents.
func NetSaleProceedsByYear(houseValue, appreciationRate, sellTaxRate float64, ownSeries []float64) map[int]float64 {
	out := make(map[int]float64, len(ownSeries))
	for i, ownCost := range ownSeries {
		year := i + 1
		out[year] = round2(NetSaleProceeds(houseValue, appreciationRate, sellTaxRate, ownCost, year))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
