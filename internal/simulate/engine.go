package simulate

import (
	"errors"
	"fmt"

	"rent-vs-buy/internal/model"
)

var ErrUnknownMode = errors.New("unknown analysis mode")

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run evaluates a single scenario: validates the inputs, converts the
// percent-form rates to decimals once, builds the amortization schedule, and
// dispatches to the analysis the mode selects. Every call constructs fresh
// series; nothing is shared between evaluations.
func (e *Engine) Run(sc model.Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	rates := sc.DecimalRates()

	loan, err := model.NewLoan(model.LoanParams{
		HouseValue:   sc.HouseValue,
		LoanFraction: sc.LoanFraction,
		AnnualRate:   rates.Loan,
		TermYears:    sc.LoanTermYears,
		Method:       sc.Method,
	})
	if err != nil {
		return nil, fmt.Errorf("loan: %w", err)
	}

	switch sc.Mode {
	case model.ModeBreakEven:
		proj := Project(ProjectionInputs{
			InitialRent:          sc.InitialRent,
			RentInflation:        rates.RentInflation,
			InitialMaintenance:   sc.InitialMaintenance,
			MaintenanceInflation: rates.MaintenanceInflation,
			Schedule:             loan.Schedule,
			HorizonYears:         sc.HorizonYears,
			InitialInvestment:    sc.InitialInvestment,
		})
		return &Result{
			Mode: sc.Mode,
			Loan: loan,
			BreakEven: &BreakEvenResult{
				BreakEvenYear:      proj.BreakEvenYear,
				RentSeries:         proj.RentSeries,
				OwnSeries:          proj.OwnSeries,
				SaleProceedsByYear: NetSaleProceedsByYear(sc.HouseValue, rates.Appreciation, rates.SellTax, proj.OwnSeries),
			},
		}, nil

	case model.ModeCashFlow:
		cf, err := SimulateCashFlow(CashFlowInputs{
			Salary:              sc.AnnualSalary,
			SalaryGrowth:        rates.SalaryGrowth,
			OpportunityCostRate: rates.OpportunityCost,
			Schedule:            loan.Schedule,
			InitialRent:         sc.InitialRent,
			RentInflation:       rates.RentInflation,
			HorizonYears:        sc.HorizonYears,
			InitialInvestment:   sc.InitialInvestment,
			MaintenanceCosts:    MaintenanceSeries(sc.InitialMaintenance, rates.MaintenanceInflation, sc.HorizonYears),
			Expenditure:         sc.AnnualExpenditure,
			SaleProceeds:        RawSaleProceedsSeries(sc.HouseValue, rates.Appreciation, rates.SellTax, sc.HorizonYears),
			SellYear:            sc.SellYear,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Mode: sc.Mode, Loan: loan, CashFlow: cf}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, sc.Mode)
	}
}
