package simulate

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"phase",
		"salary",
		"net_savings",
		"rent_cost",
		"own_cost",
		"sale_proceeds",
		"cash_rent",
		"cash_buy",
		"cash_buy_and_sell",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Year),
			string(r.Phase),
			fmtMoney(r.Salary),
			fmtMoney(r.NetSavings),
			fmtMoney(r.RentCost),
			fmtMoney(r.OwnCost),
			fmtMoney(r.SaleProceeds),
			fmtMoney(r.CashRent),
			fmtMoney(r.CashBuy),
			fmtMoney(r.CashBuyAndSell),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func fmtMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
