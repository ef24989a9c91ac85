package models

// AnalyzeResponse represents the response from an analysis run
type AnalyzeResponse struct {
	Status    string            `json:"status"`
	Mode      string            `json:"mode"`
	Cached    bool              `json:"cached,omitempty"`
	Loan      LoanSummary       `json:"loan"`
	BreakEven *BreakEvenPayload `json:"break_even,omitempty"`
	CashFlow  *CashFlowPayload  `json:"cash_flow,omitempty"`
}

// LoanSummary contains the derived loan figures
type LoanSummary struct {
	DownPayment         float64 `json:"down_payment"`
	LoanAmount          float64 `json:"loan_amount"`
	TermMonths          int     `json:"term_months"`
	FirstMonthlyPayment float64 `json:"first_monthly_payment"`
	TotalPayments       float64 `json:"total_payments"`
}

// BreakEvenPayload contains the break-even analysis results
type BreakEvenPayload struct {
	BreakEvenYear      *int            `json:"break_even_year"`
	RentSeries         []float64       `json:"rent_series"`
	OwnSeries          []float64       `json:"own_series"`
	SaleProceedsByYear map[int]float64 `json:"sale_proceeds_by_year"`
}

// CashFlowPayload contains the cash-flow analysis results
type CashFlowPayload struct {
	RentCashSeries       []float64   `json:"rent_cash_series"`
	BuyCashSeries        []float64   `json:"buy_cash_series"`
	BuyAndSellCashSeries []float64   `json:"buy_and_sell_cash_series"`
	Ledger               []LedgerRow `json:"ledger,omitempty"`
}

// LedgerRow represents one simulated year in the cash-flow ledger
type LedgerRow struct {
	Year           int     `json:"year"`
	Phase          string  `json:"phase"` // "HOLDING", "SALE", "SOLD"
	Salary         float64 `json:"salary"`
	NetSavings     float64 `json:"net_savings"`
	RentCost       float64 `json:"rent_cost"`
	OwnCost        float64 `json:"own_cost"`
	SaleProceeds   float64 `json:"sale_proceeds,omitempty"`
	CashRent       float64 `json:"cash_rent"`
	CashBuy        float64 `json:"cash_buy"`
	CashBuyAndSell float64 `json:"cash_buy_and_sell"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string          `json:"name"`
	Summary ScenarioSummary `json:"summary"`
}

// ScenarioSummary contains the headline figures of one evaluation
type ScenarioSummary struct {
	Mode                string   `json:"mode"`
	BreakEvenYear       *int     `json:"break_even_year,omitempty"`
	FinalRentCost       *float64 `json:"final_rent_cost,omitempty"`
	FinalOwnCost        *float64 `json:"final_own_cost,omitempty"`
	FinalCashRent       *float64 `json:"final_cash_rent,omitempty"`
	FinalCashBuy        *float64 `json:"final_cash_buy,omitempty"`
	FinalCashBuyAndSell *float64 `json:"final_cash_buy_and_sell,omitempty"`
}

// SellYearsResponse represents the response from ranking sale years
type SellYearsResponse struct {
	Rankings []SellYearRanking `json:"rankings"`
}

// SellYearRanking represents one ranked sale year
type SellYearRanking struct {
	Rank         int     `json:"rank"`
	SellYear     int     `json:"sell_year"`
	SaleYearCash float64 `json:"sale_year_cash"`
	FinalNetCash float64 `json:"final_net_cash"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	File       string  `json:"file"`
	HouseValue float64 `json:"house_value"`
	Mode       string  `json:"mode,omitempty"`
}

// MethodInfo represents information about a repayment method
type MethodInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ModeInfo represents information about an analysis mode
type ModeInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Outputs     []string `json:"outputs"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
