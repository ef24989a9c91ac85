package models

// AnalyzeRequest represents the request body for running an analysis
type AnalyzeRequest struct {
	Scenario ScenarioParams `json:"scenario" binding:"required"`
	Options  AnalyzeOptions `json:"options,omitempty"`
}

// ScenarioParams mirrors the engine's scenario inputs. Rate fields are in
// percent form (3.7 == 3.7%), exactly as collected by the UI sliders.
type ScenarioParams struct {
	HouseValue    float64 `json:"house_value" binding:"required"`
	LoanFraction  float64 `json:"loan_fraction"`
	LoanRatePct   float64 `json:"loan_rate_pct"`
	LoanTermYears int     `json:"loan_term_years" binding:"required"`

	AppreciationRatePct float64 `json:"appreciation_rate_pct"`

	InitialMaintenance      float64 `json:"initial_maintenance"`
	MaintenanceInflationPct float64 `json:"maintenance_inflation_pct"`

	InitialRent      float64 `json:"initial_rent"`
	RentInflationPct float64 `json:"rent_inflation_pct"`

	SellTaxRatePct float64 `json:"sell_tax_rate_pct"`

	HorizonYears      int     `json:"horizon_years" binding:"required"`
	InitialInvestment float64 `json:"initial_investment"`

	AnnualSalary           float64 `json:"annual_salary"`
	SalaryGrowthPct        float64 `json:"salary_growth_pct"`
	OpportunityCostRatePct float64 `json:"opportunity_cost_rate_pct"`
	AnnualExpenditure      float64 `json:"annual_expenditure"`
	SellYear               int     `json:"sell_year"`

	Method string `json:"method"`
	Mode   string `json:"mode" binding:"required"`
}

// AnalyzeOptions contains optional analysis parameters
type AnalyzeOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
	NoCache       bool `json:"no_cache,omitempty"`       // bypass the result cache
}

// CompareRequest represents a request to compare scenario variations
type CompareRequest struct {
	Base       ScenarioParams      `json:"base" binding:"required"`
	Variations []ScenarioVariation `json:"variations" binding:"required"`
}

// ScenarioVariation defines a variation to evaluate
type ScenarioVariation struct {
	Name     string         `json:"name" binding:"required"`
	Scenario ScenarioParams `json:"scenario" binding:"required"`
}

// SellYearsRequest represents a request to rank candidate sale years
type SellYearsRequest struct {
	Scenario ScenarioParams `json:"scenario" binding:"required"`
	Limit    int            `json:"limit,omitempty"` // default: all years
}
