package simulate

import (
	"math"

	"rent-vs-buy/internal/model"
)

// ProjectionInputs are the cumulative-cost projection inputs, rates in
// decimal form.
type ProjectionInputs struct {
	InitialRent          float64
	RentInflation        float64
	InitialMaintenance   float64
	MaintenanceInflation float64
	Schedule             model.PaymentSchedule
	HorizonYears         int
	InitialInvestment    float64
}

// CostProjection holds the year-indexed cumulative cost series for both
// strategies. Index 0 is year 1.
type CostProjection struct {
	RentSeries    []float64
	OwnSeries     []float64
	BreakEvenYear *int
}

// Project builds cumulative renting and owning cost series over the horizon.
// Renting accumulates inflated annual rent. Owning starts at the initial
// investment and accumulates each year's mortgage payments plus inflated
// maintenance; the schedule contributes nothing once the loan term ends.
func Project(in ProjectionInputs) CostProjection {
	rent := make([]float64, 0, in.HorizonYears)
	own := make([]float64, 0, in.HorizonYears)

	cumRent := 0.0
	cumOwn := in.InitialInvestment
	for year := 1; year <= in.HorizonYears; year++ {
		cumRent += in.InitialRent * math.Pow(1+in.RentInflation, float64(year-1))
		rent = append(rent, cumRent)

		maintenance := in.InitialMaintenance * math.Pow(1+in.MaintenanceInflation, float64(year-1))
		cumOwn += in.Schedule.YearSum(year) + maintenance
		own = append(own, cumOwn)
	}

	return CostProjection{
		RentSeries:    rent,
		OwnSeries:     own,
		BreakEvenYear: BreakEvenYear(rent, own),
	}
}

// BreakEvenYear returns the first year whose cumulative owning cost is
// strictly below the cumulative renting cost, or nil if owning never
// undercuts renting within the series. A tie does not count.
func BreakEvenYear(rentSeries, ownSeries []float64) *int {
	for i := range rentSeries {
		if i >= len(ownSeries) {
			break
		}
		if ownSeries[i] < rentSeries[i] {
			year := i + 1
			return &year
		}
	}
	return nil
}

// MaintenanceSeries returns the inflated annual maintenance cost for years
// 1..horizonYears. Index 0 is year 1.
func MaintenanceSeries(initial, inflation float64, horizonYears int) []float64 {
	out := make([]float64, horizonYears)
	for i := range out {
		out[i] = initial * math.Pow(1+inflation, float64(i))
	}
	return out
}
