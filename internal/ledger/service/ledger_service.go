package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stockdesk/internal/domain"
	apperrors "stockdesk/internal/errors"
	"stockdesk/internal/infrastructure/metrics"
)

type Repository interface {
	Load(ctx context.Context) []domain.InventoryItem
	Save(ctx context.Context, items []domain.InventoryItem) error
}

type RemovalStatus string

const (
	RemovalAllSuccess RemovalStatus = "ALL_SUCCESS"
	RemovalPartial    RemovalStatus = "PARTIAL"
	RemovalAllFailed  RemovalStatus = "ALL_FAILED"
)

type FailureReason string

const (
	ReasonNotFound          FailureReason = "NOT_FOUND"
	ReasonInsufficientStock FailureReason = "INSUFFICIENT_STOCK"
	ReasonInvalidQuantity   FailureReason = "INVALID_QUANTITY"
)

// NewItem is one candidate of a batch add. Prices arrive as text and must
// parse; validation rejects the whole batch on any bad candidate.
type NewItem struct {
	Name          string
	Category      string
	Supplier      string
	SKU           string
	Barcode       string
	Stock         int
	SellingPrice  string
	BuyingPrice   string
	SalesVelocity float64
	ReorderPoint  int
}

// RemovalLine is one id/quantity pair of a batch removal. SalePrice is an
// optional override logged with the removal for accounting; it does not
// affect the ledger.
type RemovalLine struct {
	ID        string
	Quantity  int
	SalePrice string
}

type LineSuccess struct {
	ID             string
	Quantity       int
	RemainingStock int
}

type LineFailure struct {
	ID       string
	Quantity int
	Reason   FailureReason
}

type RemovalResult struct {
	Status    RemovalStatus
	Successes []LineSuccess
	Failures  []LineFailure
}

// LedgerService owns the in-memory collection. All writes go through it;
// readers get copies via Snapshot. Every committed mutation is written
// through to the cache best-effort.
type LedgerService struct {
	mu      sync.Mutex
	items   []domain.InventoryItem
	repo    Repository
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewLedgerService(repo Repository, logger *zap.Logger, m *metrics.Metrics) *LedgerService {
	return &LedgerService{
		repo:    repo,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Hydrate loads the collection from the cache (or seed fallback).
func (s *LedgerService) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.repo.Load(ctx)
	s.logger.Info("ledger hydrated", zap.Int("itemCount", len(s.items)))
}

// Snapshot returns a copy of the collection for read-only pipelines.
func (s *LedgerService) Snapshot() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddItems validates and appends a batch of candidates. If any candidate
// fails validation nothing is committed. Returns the number of items added.
func (s *LedgerService) AddItems(ctx context.Context, candidates []NewItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(candidates) == 0 {
		return 0, apperrors.NewValidationError("no items to add")
	}

	existingSKUs := make(map[string]struct{}, len(s.items))
	for _, it := range s.items {
		existingSKUs[it.SKU] = struct{}{}
	}

	var details []apperrors.ValidationDetail
	batchSKUs := make(map[string]int, len(candidates))

	for i, c := range candidates {
		field := func(name string) string {
			return fmt.Sprintf("items[%d].%s", i, name)
		}
		label := fmt.Sprintf("candidate %d", i+1)

		if c.Name == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("name"),
				Message: label + ": name is required",
			})
		}
		if c.SKU == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("sku"),
				Message: label + ": sku is required",
			})
		} else {
			if _, taken := existingSKUs[c.SKU]; taken {
				details = append(details, apperrors.ValidationDetail{
					Field:   field("sku"),
					Message: fmt.Sprintf("%s: sku %q already exists", label, c.SKU),
				})
			}
			if prev, dup := batchSKUs[c.SKU]; dup {
				details = append(details, apperrors.ValidationDetail{
					Field:   field("sku"),
					Message: fmt.Sprintf("%s: sku %q duplicates candidate %d", label, c.SKU, prev+1),
				})
			}
			batchSKUs[c.SKU] = i
		}
		if _, err := parsePrice(c.SellingPrice); err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("sellingPrice"),
				Message: label + ": " + err.Error(),
			})
		}
		if _, err := parsePrice(c.BuyingPrice); err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("buyingPrice"),
				Message: label + ": " + err.Error(),
			})
		}
		if c.Stock < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("stock"),
				Message: label + ": stock must not be negative",
			})
		}
	}

	if len(details) > 0 {
		s.logger.Warn("batch add rejected",
			zap.Int("candidateCount", len(candidates)),
			zap.Int("violationCount", len(details)))
		return 0, apperrors.NewValidationError("batch rejected: one or more items failed validation", details...)
	}

	now := s.now()
	for _, c := range candidates {
		selling, _ := parsePrice(c.SellingPrice)
		buying, _ := parsePrice(c.BuyingPrice)
		s.items = append(s.items, domain.InventoryItem{
			ID:            uuid.NewString(),
			Name:          c.Name,
			Category:      c.Category,
			Supplier:      c.Supplier,
			SKU:           c.SKU,
			Barcode:       c.Barcode,
			Stock:         c.Stock,
			SellingPrice:  selling,
			BuyingPrice:   buying,
			LastUpdated:   now,
			InitialStock:  c.Stock,
			SalesVelocity: c.SalesVelocity,
			ReorderPoint:  c.ReorderPoint,
		})
	}

	s.persistLocked(ctx)
	s.metrics.ItemsAdded.Add(float64(len(candidates)))
	s.logger.Info("items added", zap.Int("count", len(candidates)))

	return len(candidates), nil
}

// RemoveStock deducts quantities from the given items with partial-success
// semantics: a line that would drive stock negative is reported and
// skipped, the others proceed.
func (s *LedgerService) RemoveStock(ctx context.Context, lines []RemovalLine) RemovalResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	successes := []LineSuccess{}
	failures := []LineFailure{}
	now := s.now()

	for _, line := range lines {
		idx := s.indexOfLocked(line.ID)
		switch {
		case line.Quantity <= 0:
			failures = append(failures, LineFailure{ID: line.ID, Quantity: line.Quantity, Reason: ReasonInvalidQuantity})
			s.logger.Warn("removal line rejected", zap.String("itemId", line.ID), zap.Int("quantity", line.Quantity), zap.String("reason", string(ReasonInvalidQuantity)))
		case idx < 0:
			failures = append(failures, LineFailure{ID: line.ID, Quantity: line.Quantity, Reason: ReasonNotFound})
			s.logger.Warn("removal line rejected", zap.String("itemId", line.ID), zap.Int("quantity", line.Quantity), zap.String("reason", string(ReasonNotFound)))
		case s.items[idx].Stock < line.Quantity:
			failures = append(failures, LineFailure{ID: line.ID, Quantity: line.Quantity, Reason: ReasonInsufficientStock})
			s.logger.Warn("removal line rejected", zap.String("itemId", line.ID), zap.Int("quantity", line.Quantity), zap.Int("stock", s.items[idx].Stock), zap.String("reason", string(ReasonInsufficientStock)))
		default:
			it := &s.items[idx]
			it.Stock -= line.Quantity
			it.SoldToday += line.Quantity
			it.SoldWeek += line.Quantity
			it.LastUpdated = now
			successes = append(successes, LineSuccess{ID: line.ID, Quantity: line.Quantity, RemainingStock: it.Stock})
			s.metrics.StockRemoved.Add(float64(line.Quantity))
			fields := []zap.Field{zap.String("itemId", line.ID), zap.Int("quantity", line.Quantity), zap.Int("remaining", it.Stock)}
			if line.SalePrice != "" {
				fields = append(fields, zap.String("salePrice", line.SalePrice))
			}
			s.logger.Info("stock removed", fields...)
		}
	}

	s.metrics.RemovalFailures.Add(float64(len(failures)))

	if len(successes) > 0 {
		s.persistLocked(ctx)
	}

	status := RemovalAllSuccess
	switch {
	case len(successes) == 0:
		status = RemovalAllFailed
	case len(failures) > 0:
		status = RemovalPartial
	}

	return RemovalResult{Status: status, Successes: successes, Failures: failures}
}

// DeleteItems removes the given ids outright, regardless of stock level.
// Unknown ids are ignored. Returns the number of items removed.
func (s *LedgerService) DeleteItems(ctx context.Context, ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	kept := s.items[:0]
	removed := 0
	for _, it := range s.items {
		if _, hit := doomed[it.ID]; hit {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept

	if removed > 0 {
		s.persistLocked(ctx)
		s.metrics.ItemsDeleted.Add(float64(removed))
		s.logger.Info("items deleted", zap.Int("count", removed))
	}

	return removed
}

// ResolveCode maps a scanned or typed code to an item by exact barcode
// match; the first match wins when barcodes collide. A miss is a
// NotFoundError, never a failure.
func (s *LedgerService) ResolveCode(code string) (domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.Barcode != "" && it.Barcode == code {
			return it, nil
		}
	}
	return domain.InventoryItem{}, apperrors.NewNotFoundError(fmt.Sprintf("no item matches code %q", code))
}

func (s *LedgerService) indexOfLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the collection through to the cache. Failures are
// logged and counted but never rolled back or surfaced.
func (s *LedgerService) persistLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.metrics.CacheFailures.Inc()
		s.logger.Warn("persisting ledger failed", zap.Error(err))
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("price is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price %q is not a number", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("price must not be negative")
	}
	return d, nil
}
