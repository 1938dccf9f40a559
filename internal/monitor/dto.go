package monitor

import (
	"time"

	"github.com/shopspring/decimal"

	"stockdesk/internal/domain"
)

// MonitorItemView is the richer per-item shape of the stock-health page.
// DaysUntilOutOfStock is null for items with no measurable sales velocity.
type MonitorItemView struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Category            string        `json:"category"`
	Supplier            string        `json:"supplier,omitempty"`
	SKU                 string        `json:"sku"`
	Barcode             string        `json:"barcode,omitempty"`
	Stock               int           `json:"stock"`
	InitialStock        int           `json:"initialStock"`
	SoldToday           int           `json:"soldToday"`
	SoldWeek            int           `json:"soldWeek"`
	SalesVelocity       float64       `json:"salesVelocity"`
	ReorderPoint        int           `json:"reorderPoint"`
	DaysUntilOutOfStock *int          `json:"daysUntilOutOfStock"`
	Status              domain.Status `json:"status"`
	LastUpdated         time.Time     `json:"lastUpdated"`
}

func NewMonitorItemView(it domain.InventoryItem, policy domain.StatusPolicy) MonitorItemView {
	view := MonitorItemView{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Supplier:      it.Supplier,
		SKU:           it.SKU,
		Barcode:       it.Barcode,
		Stock:         it.Stock,
		InitialStock:  it.InitialStock,
		SoldToday:     it.SoldToday,
		SoldWeek:      it.SoldWeek,
		SalesVelocity: it.SalesVelocity,
		ReorderPoint:  it.ReorderPoint,
		Status:        it.StockStatus(policy),
		LastUpdated:   it.LastUpdated,
	}
	if f := it.DepletionForecast(); !f.Unbounded() {
		days := f.Days()
		view.DaysUntilOutOfStock = &days
	}
	return view
}

type StockViewResponse struct {
	Items      []MonitorItemView `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

type SummaryResponse struct {
	TotalItems    int             `json:"totalItems"`
	InStock       int             `json:"inStock"`
	LowStock      int             `json:"lowStock"`
	OutOfStock    int             `json:"outOfStock"`
	BelowReorder  int             `json:"belowReorder"`
	StockValue    decimal.Decimal `json:"stockValue"`
	PotentialGain decimal.Decimal `json:"potentialGain"`
}
