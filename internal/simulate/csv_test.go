package simulate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"rent-vs-buy/internal/model"
)

func TestWriteLedgerCSV(t *testing.T) {
	ledger := []LedgerRow{
		{Year: 1, Phase: model.PhaseHolding, Salary: 61200, NetSavings: 46200, RentCost: 15000, OwnCost: 15875.29, CashRent: 36562, CashBuy: 35890, CashBuyAndSell: 35890},
		{Year: 2, Phase: model.PhaseSale, Salary: 62424, SaleProceeds: 303960, CashBuyAndSell: 120000},
	}

	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := WriteLedgerCSV(path, ledger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "year" || rows[0][1] != "phase" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "HOLDING" || rows[2][1] != "SALE" {
		t.Errorf("unexpected phases: %v / %v", rows[1][1], rows[2][1])
	}
	if rows[2][6] != "303960.00" {
		t.Errorf("expected sale proceeds 303960.00, got %s", rows[2][6])
	}
}
