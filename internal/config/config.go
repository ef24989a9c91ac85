package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rent-vs-buy/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the scenario from a separate YAML (e.g. examples/scenarios/*.yaml).
	// If both ScenarioFile and Scenario are provided, Scenario overrides ScenarioFile.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
}

type ScenarioConfig struct {
	Name string `yaml:"name"`

	HouseValue    float64 `yaml:"house_value"`
	LoanFraction  float64 `yaml:"loan_fraction"`
	LoanRatePct   float64 `yaml:"loan_rate_pct"`
	LoanTermYears int     `yaml:"loan_term_years"`

	AppreciationRatePct float64 `yaml:"appreciation_rate_pct"`

	InitialMaintenance      float64 `yaml:"initial_maintenance"`
	MaintenanceInflationPct float64 `yaml:"maintenance_inflation_pct"`

	InitialRent      float64 `yaml:"initial_rent"`
	RentInflationPct float64 `yaml:"rent_inflation_pct"`

	SellTaxRatePct float64 `yaml:"sell_tax_rate_pct"`

	HorizonYears      int     `yaml:"horizon_years"`
	InitialInvestment float64 `yaml:"initial_investment"`

	AnnualSalary           float64 `yaml:"annual_salary"`
	SalaryGrowthPct        float64 `yaml:"salary_growth_pct"`
	OpportunityCostRatePct float64 `yaml:"opportunity_cost_rate_pct"`
	AnnualExpenditure      float64 `yaml:"annual_expenditure"`
	SellYear               int     `yaml:"sell_year"`

	Method string `yaml:"method"`
	Mode   string `yaml:"mode"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Default the categorical fields so preset files can stay concise.
	if c.Scenario.Method == "" {
		c.Scenario.Method = string(model.MethodAnnuity)
	}
	if c.Scenario.Mode == "" {
		c.Scenario.Mode = string(model.ModeBreakEven)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides
	// from c.Scenario.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the scenario and its loan.
	sc := c.Scenario.ToScenario()
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	rates := sc.DecimalRates()
	_, err := model.NewLoan(model.LoanParams{
		HouseValue:   sc.HouseValue,
		LoanFraction: sc.LoanFraction,
		AnnualRate:   rates.Loan,
		TermYears:    sc.LoanTermYears,
		Method:       sc.Method,
	})
	if err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

func (s ScenarioConfig) ToScenario() model.Scenario {
	return model.Scenario{
		HouseValue:              s.HouseValue,
		LoanFraction:            s.LoanFraction,
		LoanRatePct:             s.LoanRatePct,
		LoanTermYears:           s.LoanTermYears,
		AppreciationRatePct:     s.AppreciationRatePct,
		InitialMaintenance:      s.InitialMaintenance,
		MaintenanceInflationPct: s.MaintenanceInflationPct,
		InitialRent:             s.InitialRent,
		RentInflationPct:        s.RentInflationPct,
		SellTaxRatePct:          s.SellTaxRatePct,
		HorizonYears:            s.HorizonYears,
		InitialInvestment:       s.InitialInvestment,
		AnnualSalary:            s.AnnualSalary,
		SalaryGrowthPct:         s.SalaryGrowthPct,
		OpportunityCostRatePct:  s.OpportunityCostRatePct,
		AnnualExpenditure:       s.AnnualExpenditure,
		SellYear:                s.SellYear,
		Method:                  model.Method(s.Method),
		Mode:                    model.Mode(s.Mode),
	}
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a standalone scenario preset file.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a scenario preset and then applying overrides
// from the top-level config.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.HouseValue != 0 {
		out.HouseValue = override.HouseValue
	}
	if override.LoanFraction != 0 {
		out.LoanFraction = override.LoanFraction
	}
	if override.LoanRatePct != 0 {
		out.LoanRatePct = override.LoanRatePct
	}
	if override.LoanTermYears != 0 {
		out.LoanTermYears = override.LoanTermYears
	}
	if override.AppreciationRatePct != 0 {
		out.AppreciationRatePct = override.AppreciationRatePct
	}
	if override.InitialMaintenance != 0 {
		out.InitialMaintenance = override.InitialMaintenance
	}
	if override.MaintenanceInflationPct != 0 {
		out.MaintenanceInflationPct = override.MaintenanceInflationPct
	}
	if override.InitialRent != 0 {
		out.InitialRent = override.InitialRent
	}
	if override.RentInflationPct != 0 {
		out.RentInflationPct = override.RentInflationPct
	}
	if override.SellTaxRatePct != 0 {
		out.SellTaxRatePct = override.SellTaxRatePct
	}
	if override.HorizonYears != 0 {
		out.HorizonYears = override.HorizonYears
	}
	if override.InitialInvestment != 0 {
		out.InitialInvestment = override.InitialInvestment
	}
	if override.AnnualSalary != 0 {
		out.AnnualSalary = override.AnnualSalary
	}
	if override.SalaryGrowthPct != 0 {
		out.SalaryGrowthPct = override.SalaryGrowthPct
	}
	if override.OpportunityCostRatePct != 0 {
		out.OpportunityCostRatePct = override.OpportunityCostRatePct
	}
	if override.AnnualExpenditure != 0 {
		out.AnnualExpenditure = override.AnnualExpenditure
	}
	if override.SellYear != 0 {
		out.SellYear = override.SellYear
	}
	if override.Method != "" {
		out.Method = override.Method
	}
	if override.Mode != "" {
		out.Mode = override.Mode
	}
	return out
}
