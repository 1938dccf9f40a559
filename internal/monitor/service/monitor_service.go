package service

import (
	"github.com/shopspring/decimal"

	"stockdesk/internal/domain"
	"stockdesk/internal/query"
)

type Ledger interface {
	Snapshot() []domain.InventoryItem
}

// MonitorService serves the stock-health view over the same collection as
// the ledger, classified against each item's reorder point instead of the
// fixed low-stock threshold.
type MonitorService struct {
	ledger   Ledger
	policy   domain.StatusPolicy
	pageSize int
}

func NewMonitorService(ledger Ledger, fallbackThreshold, pageSize int) *MonitorService {
	return &MonitorService{
		ledger:   ledger,
		policy:   domain.ReorderPointPolicy(fallbackThreshold),
		pageSize: pageSize,
	}
}

func (s *MonitorService) Policy() domain.StatusPolicy {
	return s.policy
}

type StockQuery struct {
	Search     string
	Categories []string
	Statuses   []domain.Status
	Suppliers  []string
	SortKey    query.SortKey
	Direction  query.Direction
	Page       int
	PageSize   int
}

// StockView runs the query pipeline with monitor defaults: depletion-first
// ordering and the configurable monitor page size.
func (s *MonitorService) StockView(q StockQuery) query.Result {
	sortKey := q.SortKey
	if sortKey == "" {
		sortKey = query.SortByDepletion
	}
	direction := q.Direction
	if direction == "" {
		direction = query.Asc
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	return query.Run(s.ledger.Snapshot(), s.policy, query.Params{
		Search:     q.Search,
		Categories: q.Categories,
		Statuses:   q.Statuses,
		Suppliers:  q.Suppliers,
		SortKey:    sortKey,
		Direction:  direction,
		Page:       page,
		PageSize:   pageSize,
	})
}

type Summary struct {
	TotalItems    int
	InStock       int
	LowStock      int
	OutOfStock    int
	BelowReorder  int
	StockValue    decimal.Decimal
	PotentialGain decimal.Decimal
}

// Summary aggregates stock health across the whole collection. StockValue
// is at buying price; PotentialGain is the profit if everything on hand
// sold at its selling price.
func (s *MonitorService) Summary() Summary {
	sum := Summary{
		StockValue:    decimal.Zero,
		PotentialGain: decimal.Zero,
	}

	for _, it := range s.ledger.Snapshot() {
		sum.TotalItems++
		switch it.StockStatus(s.policy) {
		case domain.StatusInStock:
			sum.InStock++
		case domain.StatusLowStock:
			sum.LowStock++
		case domain.StatusOutOfStock:
			sum.OutOfStock++
		}
		if it.ReorderPoint > 0 && it.Stock <= it.ReorderPoint {
			sum.BelowReorder++
		}
		qty := decimal.NewFromInt(int64(it.Stock))
		sum.StockValue = sum.StockValue.Add(it.BuyingPrice.Mul(qty))
		sum.PotentialGain = sum.PotentialGain.Add(it.ExpectedProfit().Mul(qty))
	}

	return sum
}
