package simulate

import "rent-vs-buy/internal/model"

// LedgerRow is one simulated year of the cash-flow analysis.
// This is the primary artifact for "what happened" in a run.
type LedgerRow struct {
	Year int

	Phase model.Phase

	Salary     float64
	NetSavings float64

	RentCost float64
	OwnCost  float64 // mortgage payments + maintenance for the year

	SaleProceeds float64 // nonzero only in the sale year

	CashRent       float64
	CashBuy        float64
	CashBuyAndSell float64
}

// CashFlowResult bundles the three strategy series with the per-year ledger.
// Index 0 of each series is year 1.
type CashFlowResult struct {
	RentSeries       []float64
	BuySeries        []float64
	BuyAndSellSeries []float64
	Ledger           []LedgerRow
}

// BreakEvenResult is the break-even analysis payload.
type BreakEvenResult struct {
	BreakEvenYear      *int
	RentSeries         []float64
	OwnSeries          []float64
	SaleProceedsByYear map[int]float64
}

// Result is the single artifact handed to presentation collaborators. Exactly
// one of BreakEven/CashFlow is set, according to Mode.
type Result struct {
	Mode model.Mode
	Loan *model.Loan

	BreakEven *BreakEvenResult
	CashFlow  *CashFlowResult
}
