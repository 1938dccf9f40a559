package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusInStock    Status = "IN_STOCK"
	StatusLowStock   Status = "LOW_STOCK"
	StatusOutOfStock Status = "OUT_OF_STOCK"
)

// InventoryItem is the single entity of the ledger. Status, profit, margin
// and the depletion forecast are derived and only ever exposed as methods.
type InventoryItem struct {
	ID           string
	Name         string
	Category     string
	Supplier     string
	SKU          string
	Barcode      string
	Stock        int
	SellingPrice decimal.Decimal
	BuyingPrice  decimal.Decimal
	LastUpdated  time.Time

	// Stock-monitor fields.
	InitialStock  int
	SoldToday     int
	SoldWeek      int
	SalesVelocity float64 // units per day
	ReorderPoint  int
}

func (i InventoryItem) ExpectedProfit() decimal.Decimal {
	return i.SellingPrice.Sub(i.BuyingPrice)
}

// ProfitMargin returns the margin as a percentage rounded to one decimal
// place. A zero selling price yields zero rather than dividing by zero.
func (i InventoryItem) ProfitMargin() decimal.Decimal {
	if i.SellingPrice.IsZero() {
		return decimal.Zero
	}
	return i.ExpectedProfit().
		Div(i.SellingPrice).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

func (i InventoryItem) StockStatus(policy StatusPolicy) Status {
	return policy(i)
}
