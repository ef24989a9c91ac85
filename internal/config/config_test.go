package config

import (
	"os"
	"path/filepath"
	"testing"

	"rent-vs-buy/internal/model"
)

const presetYAML = `scenario:
  name: Test preset
  house_value: 300000
  loan_fraction: 0.7
  loan_rate_pct: 3.7
  loan_term_years: 20
  appreciation_rate_pct: 2
  initial_maintenance: 1000
  maintenance_inflation_pct: 2
  initial_rent: 15000
  rent_inflation_pct: 2
  sell_tax_rate_pct: 36
  horizon_years: 30
  initial_investment: 5000
  annual_salary: 60000
  salary_growth_pct: 2
  opportunity_cost_rate_pct: 1
  annual_expenditure: 15000
  sell_year: 10
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_DefaultsMethodAndMode(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", presetYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scenario.Method != string(model.MethodAnnuity) {
		t.Errorf("expected default method Annuity, got %q", cfg.Scenario.Method)
	}
	if cfg.Scenario.Mode != string(model.ModeBreakEven) {
		t.Errorf("expected default mode break-even, got %q", cfg.Scenario.Mode)
	}
}

func TestLoad_ScenarioFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", presetYAML)
	cfgPath := writeFile(t, dir, "config.yaml", `scenario_file: preset.yaml
scenario:
  house_value: 500000
  method: Linear
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scenario.HouseValue != 500000 {
		t.Errorf("override should win: expected 500000, got %.0f", cfg.Scenario.HouseValue)
	}
	if cfg.Scenario.Method != "Linear" {
		t.Errorf("override should win: expected Linear, got %q", cfg.Scenario.Method)
	}
	if cfg.Scenario.InitialRent != 15000 {
		t.Errorf("preset value should survive: expected 15000, got %.0f", cfg.Scenario.InitialRent)
	}
	if cfg.Scenario.Name != "Test preset" {
		t.Errorf("preset name should survive, got %q", cfg.Scenario.Name)
	}
}

func TestLoad_InvalidScenarioRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `scenario:
  house_value: 0
  loan_term_years: 20
  horizon_years: 30
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for zero house value")
	}
}

func TestLoad_InvalidMethodRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", presetYAML+`  method: Balloon
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown method")
	}
}

func TestToScenario_RoundTrip(t *testing.T) {
	sc := ScenarioConfig{
		HouseValue:    300000,
		LoanFraction:  0.7,
		LoanRatePct:   3.7,
		LoanTermYears: 20,
		HorizonYears:  30,
		Method:        "Annuity",
		Mode:          "cash-flow",
	}
	got := sc.ToScenario()
	if got.Method != model.MethodAnnuity {
		t.Errorf("expected Annuity, got %q", got.Method)
	}
	if got.Mode != model.ModeCashFlow {
		t.Errorf("expected cash-flow, got %q", got.Mode)
	}
	if got.LoanRatePct != 3.7 {
		t.Errorf("rates stay in percent form until the engine: got %v", got.LoanRatePct)
	}
}
