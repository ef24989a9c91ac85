package analysis

import (
	"sort"

	"rent-vs-buy/internal/model"
	"rent-vs-buy/internal/simulate"
)

// SellYearOutcome summarizes one candidate sale year.
type SellYearOutcome struct {
	SellYear     int
	SaleYearCash float64 // buy-and-sell balance in the sale year itself
	FinalNetCash float64 // buy-and-sell balance at the end of the horizon
}

// RankSellYears runs the cash-flow simulation once per candidate sale year in
// [1, horizon] and sorts the outcomes descending by final net cash. Ties keep
// the earlier year first.
func RankSellYears(sc model.Scenario) ([]SellYearOutcome, error) {
	engine := simulate.New()
	sc.Mode = model.ModeCashFlow

	out := make([]SellYearOutcome, 0, sc.HorizonYears)
	for year := 1; year <= sc.HorizonYears; year++ {
		sc.SellYear = year
		res, err := engine.Run(sc)
		if err != nil {
			return nil, err
		}
		series := res.CashFlow.BuyAndSellSeries
		out = append(out, SellYearOutcome{
			SellYear:     year,
			SaleYearCash: series[year-1],
			FinalNetCash: series[len(series)-1],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalNetCash > out[j].FinalNetCash
	})
	return out, nil
}
