package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdesk/internal/domain"
	"stockdesk/internal/query"
)

type mockLedger struct {
	items []domain.InventoryItem
}

func (m *mockLedger) Snapshot() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(m.items))
	copy(out, m.items)
	return out
}

func monitorFixture() []domain.InventoryItem {
	return []domain.InventoryItem{
		{
			ID: "1", Name: "Wireless Mouse", SKU: "MS-2023",
			Stock: 45, ReorderPoint: 15, SalesVelocity: 2,
			SellingPrice: decimal.RequireFromString("29.99"),
			BuyingPrice:  decimal.RequireFromString("15.50"),
		},
		{
			ID: "2", Name: "Mechanical Keyboard", SKU: "KB-8810",
			Stock: 8, ReorderPoint: 10, SalesVelocity: 1.6,
			SellingPrice: decimal.RequireFromString("89.90"),
			BuyingPrice:  decimal.RequireFromString("52.00"),
		},
		{
			ID: "3", Name: "HDMI Cable", SKU: "HD-0020",
			Stock: 0, ReorderPoint: 12, SalesVelocity: 1.2,
			SellingPrice: decimal.RequireFromString("7.50"),
			BuyingPrice:  decimal.RequireFromString("2.10"),
		},
		{
			ID: "4", Name: "Monitor Stand", SKU: "ST-7703",
			Stock: 25, ReorderPoint: 8,
			SellingPrice: decimal.RequireFromString("34.00"),
			BuyingPrice:  decimal.RequireFromString("19.75"),
		},
	}
}

func TestStockView_UsesReorderPointPolicy(t *testing.T) {
	svc := NewMonitorService(&mockLedger{items: monitorFixture()}, 10, 10)

	res := svc.StockView(StockQuery{Statuses: []domain.Status{domain.StatusLowStock}})

	require.Len(t, res.Items, 1)
	// Keyboard's stock (8) is at its reorder point (10); the ledger's fixed
	// threshold plays no role here.
	assert.Equal(t, "2", res.Items[0].ID)
}

func TestStockView_DefaultsToDepletionOrder(t *testing.T) {
	svc := NewMonitorService(&mockLedger{items: monitorFixture()}, 10, 10)

	res := svc.StockView(StockQuery{})

	// Exhausted first, then by days remaining (keyboard 5d, mouse 23d),
	// unbounded last.
	ids := make([]string, len(res.Items))
	for i, it := range res.Items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"3", "2", "1", "4"}, ids)
}

func TestStockView_SortOverride(t *testing.T) {
	svc := NewMonitorService(&mockLedger{items: monitorFixture()}, 10, 10)

	res := svc.StockView(StockQuery{SortKey: query.SortByName, Direction: query.Asc})

	names := make([]string, len(res.Items))
	for i, it := range res.Items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"HDMI Cable", "Mechanical Keyboard", "Monitor Stand", "Wireless Mouse"}, names)
}

func TestStockView_PageSizeDefault(t *testing.T) {
	svc := NewMonitorService(&mockLedger{items: monitorFixture()}, 10, 2)

	res := svc.StockView(StockQuery{})

	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.TotalPages)
}

func TestSummary(t *testing.T) {
	svc := NewMonitorService(&mockLedger{items: monitorFixture()}, 10, 10)

	sum := svc.Summary()

	assert.Equal(t, 4, sum.TotalItems)
	assert.Equal(t, 2, sum.InStock)
	assert.Equal(t, 1, sum.LowStock)
	assert.Equal(t, 1, sum.OutOfStock)
	// Keyboard (8 <= 10) and HDMI cable (0 <= 12).
	assert.Equal(t, 2, sum.BelowReorder)

	wantValue := decimal.RequireFromString("15.50").Mul(decimal.NewFromInt(45)).
		Add(decimal.RequireFromString("52.00").Mul(decimal.NewFromInt(8))).
		Add(decimal.RequireFromString("19.75").Mul(decimal.NewFromInt(25)))
	assert.True(t, sum.StockValue.Equal(wantValue), "got %s", sum.StockValue)
}
