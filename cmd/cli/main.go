package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"rent-vs-buy/internal/analysis"
	"rent-vs-buy/internal/config"
	"rent-vs-buy/internal/model"
	"rent-vs-buy/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "breakeven":
		cmdBreakEven(os.Args[2:])
	case "cashflow":
		cmdCashFlow(os.Args[2:])
	case "sell-years":
		cmdSellYears(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli breakeven --config examples/config.yaml")
	fmt.Println("  cli cashflow --config examples/config.yaml --out results/cashflow.csv")
	fmt.Println("  cli sell-years --config examples/config.yaml --top 5")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - breakeven prints cumulative rent/own costs and the break-even year")
	fmt.Println("  - cashflow writes a per-year CSV ledger with phase=HOLDING/SALE/SOLD")
	fmt.Println("  - sell-years ranks candidate sale years by final net cash")
}

func cmdBreakEven(args []string) {
	fs := flag.NewFlagSet("breakeven", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	sc := loadScenario(*cfgPath)
	sc.Mode = model.ModeBreakEven

	res, err := simulate.New().Run(sc)
	if err != nil {
		panic(err)
	}

	printLoan(res.Loan)
	be := res.BreakEven
	fmt.Printf("%-6s %-16s %-16s %-16s\n", "year", "rent", "own", "sale_net")
	for i := range be.RentSeries {
		year := i + 1
		fmt.Printf("%-6d %-16.2f %-16.2f %-16.2f\n", year, be.RentSeries[i], be.OwnSeries[i], be.SaleProceedsByYear[year])
	}
	if be.BreakEvenYear != nil {
		fmt.Printf("Break-even year: %d\n", *be.BreakEvenYear)
	} else {
		fmt.Println("Owning never undercuts renting within the horizon")
	}
}

func cmdCashFlow(args []string) {
	fs := flag.NewFlagSet("cashflow", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/cashflow.csv", "Output CSV path")
	_ = fs.Parse(args)

	sc := loadScenario(*cfgPath)
	sc.Mode = model.ModeCashFlow

	res, err := simulate.New().Run(sc)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := simulate.WriteLedgerCSV(*outPath, res.CashFlow.Ledger); err != nil {
		panic(err)
	}

	cf := res.CashFlow
	last := len(cf.RentSeries) - 1
	fmt.Printf("Wrote %d rows to %s\n", len(cf.Ledger), *outPath)
	fmt.Printf("Final cash: rent=%.2f buy=%.2f buy+sell(y%d)=%.2f\n",
		cf.RentSeries[last], cf.BuySeries[last], sc.SellYear, cf.BuyAndSellSeries[last])
}

func cmdSellYears(args []string) {
	fs := flag.NewFlagSet("sell-years", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	top := fs.Int("top", 0, "Optional: limit to the best N sale years (0=all)")
	_ = fs.Parse(args)

	sc := loadScenario(*cfgPath)

	ranked, err := analysis.RankSellYears(sc)
	if err != nil {
		panic(err)
	}
	if *top > 0 && *top < len(ranked) {
		ranked = ranked[:*top]
	}

	fmt.Printf("%-4s %-10s %-16s %-16s\n", "rank", "sell_year", "sale_year_cash", "final_net_cash")
	for i, r := range ranked {
		fmt.Printf("%-4d %-10d %-16.2f %-16.2f\n", i+1, r.SellYear, r.SaleYearCash, r.FinalNetCash)
	}
}

func loadScenario(cfgPath string) model.Scenario {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	return cfg.Scenario.ToScenario()
}

func printLoan(loan *model.Loan) {
	fmt.Printf("Loan: amount=%.2f down=%.2f term=%dmo first_payment=%.2f total=%.2f\n",
		loan.LoanAmount,
		loan.DownPayment,
		len(loan.Schedule),
		loan.Schedule[0],
		loan.Schedule.Total(),
	)
}
