package main

import (
	"flag"
	"fmt"

	"rent-vs-buy/internal/config"
	"rent-vs-buy/internal/model"
	"rent-vs-buy/internal/simulate"
)

// Demo:
// - Build a default scenario (or load one via --config)
// - Run the break-even analysis and print the headline figures
// - Run the cash-flow analysis for the same scenario and print the ledger
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	sc := model.Scenario{
		HouseValue:              300000,
		LoanFraction:            0.7,
		LoanRatePct:             3.7,
		LoanTermYears:           20,
		AppreciationRatePct:     2,
		InitialMaintenance:      1000,
		MaintenanceInflationPct: 2,
		InitialRent:             15000,
		RentInflationPct:        2,
		SellTaxRatePct:          36,
		HorizonYears:            30,
		InitialInvestment:       5000,
		AnnualSalary:            60000,
		SalaryGrowthPct:         2,
		OpportunityCostRatePct:  1,
		AnnualExpenditure:       15000,
		SellYear:                10,
		Method:                  model.MethodAnnuity,
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		sc = cfg.Scenario.ToScenario()
	}

	engine := simulate.New()

	sc.Mode = model.ModeBreakEven
	res, err := engine.Run(sc)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Loan: amount=%.2f down=%.2f monthly=%.2f\n",
		res.Loan.LoanAmount, res.Loan.DownPayment, res.Loan.Schedule[0])
	if y := res.BreakEven.BreakEvenYear; y != nil {
		fmt.Printf("Break-even year: %d\n", *y)
	} else {
		fmt.Println("No break-even within the horizon")
	}
	last := sc.HorizonYears - 1
	fmt.Printf("Year %d: rent=%.2f own=%.2f sale_net=%.2f\n",
		sc.HorizonYears,
		res.BreakEven.RentSeries[last],
		res.BreakEven.OwnSeries[last],
		res.BreakEven.SaleProceedsByYear[sc.HorizonYears],
	)

	sc.Mode = model.ModeCashFlow
	res, err = engine.Run(sc)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\n%-6s %-8s %-14s %-14s %-14s\n", "year", "phase", "cash_rent", "cash_buy", "cash_buy+sell")
	for _, row := range res.CashFlow.Ledger {
		fmt.Printf("%-6d %-8s %-14.2f %-14.2f %-14.2f\n",
			row.Year, row.Phase, row.CashRent, row.CashBuy, row.CashBuyAndSell)
	}
}
