package simulate

import (
	"errors"
	"fmt"
	"math"

	"rent-vs-buy/internal/model"
)

var ErrInvalidSellYear = errors.New("sell year outside horizon")

// CashFlowInputs are the cash-flow simulation inputs, rates in decimal form.
// MaintenanceCosts and SaleProceeds are year-indexed series (index 0 = year 1)
// covering the full horizon.
type CashFlowInputs struct {
	Salary              float64
	SalaryGrowth        float64
	OpportunityCostRate float64
	Schedule            model.PaymentSchedule
	InitialRent         float64
	RentInflation       float64
	HorizonYears        int
	InitialInvestment   float64
	MaintenanceCosts    []float64
	Expenditure         float64
	SaleProceeds        []float64
	SellYear            int
}

// SimulateCashFlow walks the horizon one year at a time and tracks cumulative
// net cash under three strategies: rent forever, buy and hold, and buy then
// sell in the chosen year.
//
// Each year the salary compounds first (including year 1), net savings are
// what remains after expenditure, and the rent/buy balances absorb their cash
// delta before the whole balance compounds at the opportunity-cost rate. The
// buy-and-sell branch moves through HOLDING/SALE/SOLD exactly once as the
// year passes the sale year; each state has its own pure per-year update.
func SimulateCashFlow(in CashFlowInputs) (*CashFlowResult, error) {
	if in.SellYear < 1 || in.SellYear > in.HorizonYears {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidSellYear, in.SellYear, in.HorizonYears)
	}
	if len(in.MaintenanceCosts) < in.HorizonYears {
		return nil, fmt.Errorf("maintenance series covers %d of %d years", len(in.MaintenanceCosts), in.HorizonYears)
	}
	if len(in.SaleProceeds) < in.HorizonYears {
		return nil, fmt.Errorf("sale proceeds series covers %d of %d years", len(in.SaleProceeds), in.HorizonYears)
	}

	res := &CashFlowResult{
		RentSeries:       make([]float64, 0, in.HorizonYears),
		BuySeries:        make([]float64, 0, in.HorizonYears),
		BuyAndSellSeries: make([]float64, 0, in.HorizonYears),
		Ledger:           make([]LedgerRow, 0, in.HorizonYears),
	}

	salary := in.Salary
	cashRent := in.InitialInvestment
	cashBuy := in.InitialInvestment

	for year := 1; year <= in.HorizonYears; year++ {
		salary *= 1 + in.SalaryGrowth
		netSavings := salary - in.Expenditure

		rentCost := in.InitialRent * math.Pow(1+in.RentInflation, float64(year-1))
		cashRent += netSavings - rentCost
		cashRent *= 1 + in.OpportunityCostRate

		maintenance := in.MaintenanceCosts[year-1]
		ownCost := in.Schedule.YearSum(year) + maintenance
		cashBuy += netSavings - ownCost
		cashBuy *= 1 + in.OpportunityCostRate

		row := LedgerRow{
			Year:       year,
			Phase:      model.PhaseForYear(year, in.SellYear),
			Salary:     salary,
			NetSavings: netSavings,
			RentCost:   rentCost,
			OwnCost:    ownCost,
			CashRent:   cashRent,
			CashBuy:    cashBuy,
		}

		var cashSell float64
		switch row.Phase {
		case model.PhaseHolding:
			cashSell = holdingCash(cashBuy)
		case model.PhaseSale:
			row.SaleProceeds = in.SaleProceeds[year-1]
			cashSell = saleCash(cashBuy, row.SaleProceeds, in.Schedule.RemainingAfterYear(year))
		case model.PhaseSold:
			prev := res.BuyAndSellSeries[len(res.BuyAndSellSeries)-1]
			cashSell = soldCash(prev, netSavings, maintenance, in.OpportunityCostRate)
		}
		row.CashBuyAndSell = cashSell

		res.RentSeries = append(res.RentSeries, cashRent)
		res.BuySeries = append(res.BuySeries, cashBuy)
		res.BuyAndSellSeries = append(res.BuyAndSellSeries, cashSell)
		res.Ledger = append(res.Ledger, row)
	}

	return res, nil
}

// holdingCash mirrors the buy branch while the property is still held.
func holdingCash(cashBuy float64) float64 {
	return cashBuy
}

// saleCash realizes the sale: the buy balance plus net proceeds, minus paying
// off the mortgage. The payoff is the sum of the remaining scheduled
// payments, an approximation inherited from the model (see
// PaymentSchedule.RemainingAfterYear).
func saleCash(cashBuy, proceeds, remainingPayments float64) float64 {
	return cashBuy + proceeds - remainingPayments
}

// soldCash rolls the balance forward after the sale: savings still accrue,
// mortgage payments no longer apply but maintenance continues, and the whole
// balance compounds.
func soldCash(prev, netSavings, maintenance, opportunityCostRate float64) float64 {
	cash := prev + netSavings - maintenance
	return cash * (1 + opportunityCostRate)
}
