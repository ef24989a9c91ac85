package model

import (
	"errors"
	"fmt"
)

// Mode selects which analysis the engine runs.
type Mode string

const (
	ModeBreakEven Mode = "break-even"
	ModeCashFlow  Mode = "cash-flow"
)

// ErrDomain covers inputs that are outside the economically meaningful range.
var ErrDomain = errors.New("scenario input out of range")

// Scenario is the canonical "inputs to the system" object: the flat set of
// scalar and categorical inputs a single evaluation consumes. Rate fields are
// in percent form as collected at the boundary (3.7 == 3.7%); the engine
// converts them to decimals exactly once via DecimalRates.
type Scenario struct {
	HouseValue   float64
	LoanFraction float64
	LoanRatePct  float64
	LoanTermYears int

	AppreciationRatePct float64

	InitialMaintenance      float64
	MaintenanceInflationPct float64

	InitialRent      float64
	RentInflationPct float64

	SellTaxRatePct float64

	HorizonYears      int
	InitialInvestment float64

	AnnualSalary           float64
	SalaryGrowthPct        float64
	OpportunityCostRatePct float64
	AnnualExpenditure      float64
	SellYear               int

	Method Method
	Mode   Mode
}

// Rates holds the decimal form of every percentage input.
type Rates struct {
	Loan                 float64
	Appreciation         float64
	MaintenanceInflation float64
	RentInflation        float64
	SellTax              float64
	SalaryGrowth         float64
	OpportunityCost      float64
}

// DecimalRates converts the percent-form rates to decimals. This is the only
// place the conversion happens; everything downstream works in decimals.
func (s Scenario) DecimalRates() Rates {
	return Rates{
		Loan:                 s.LoanRatePct / 100,
		Appreciation:         s.AppreciationRatePct / 100,
		MaintenanceInflation: s.MaintenanceInflationPct / 100,
		RentInflation:        s.RentInflationPct / 100,
		SellTax:              s.SellTaxRatePct / 100,
		SalaryGrowth:         s.SalaryGrowthPct / 100,
		OpportunityCost:      s.OpportunityCostRatePct / 100,
	}
}

func (s Scenario) Validate() error {
	if s.HouseValue <= 0 {
		return fmt.Errorf("%w: HouseValue must be > 0", ErrDomain)
	}
	if s.LoanFraction < 0 || s.LoanFraction > 1 {
		return fmt.Errorf("%w: LoanFraction must be in [0, 1]", ErrDomain)
	}
	if s.LoanRatePct < 0 {
		return fmt.Errorf("%w: LoanRatePct must be >= 0", ErrDomain)
	}
	if s.LoanTermYears < 1 {
		return fmt.Errorf("%w: LoanTermYears must be >= 1", ErrDomain)
	}
	if s.HorizonYears < 1 {
		return fmt.Errorf("%w: HorizonYears must be >= 1", ErrDomain)
	}
	if s.InitialRent < 0 {
		return fmt.Errorf("%w: InitialRent must be >= 0", ErrDomain)
	}
	if s.InitialMaintenance < 0 {
		return fmt.Errorf("%w: InitialMaintenance must be >= 0", ErrDomain)
	}
	if s.SellTaxRatePct < 0 {
		return fmt.Errorf("%w: SellTaxRatePct must be >= 0", ErrDomain)
	}
	return nil
}
