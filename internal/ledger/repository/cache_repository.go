package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stockdesk/internal/cache"
	"stockdesk/internal/domain"
)

// itemRecord is the wire shape of one item in the inventory slot. Older
// payloads may lack fields; decoding is lenient and missing ids are minted
// on load.
type itemRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier,omitempty"`
	SKU           string          `json:"sku"`
	Barcode       string          `json:"barcode,omitempty"`
	Stock         int             `json:"stock"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	BuyingPrice   decimal.Decimal `json:"buyingPrice"`
	LastUpdated   time.Time       `json:"lastUpdated"`
	InitialStock  int             `json:"initialStock,omitempty"`
	SoldToday     int             `json:"soldToday,omitempty"`
	SoldWeek      int             `json:"soldWeek,omitempty"`
	SalesVelocity float64         `json:"salesVelocity,omitempty"`
	ReorderPoint  int             `json:"reorderPoint,omitempty"`
}

type CacheRepository struct {
	store  cache.Store
	logger *zap.Logger
}

func NewCacheRepository(store cache.Store, logger *zap.Logger) *CacheRepository {
	return &CacheRepository{store: store, logger: logger}
}

// Load hydrates the collection, falling back to the seed dataset when the
// slot is absent, unreadable or unparseable. It never fails.
func (r *CacheRepository) Load(ctx context.Context) []domain.InventoryItem {
	payload, err := r.store.Get(ctx, cache.SlotInventory)
	if errors.Is(err, cache.ErrMiss) {
		r.logger.Info("inventory slot empty, using seed data")
		return Seed()
	}
	if err != nil {
		r.logger.Warn("reading inventory slot failed, using seed data", zap.Error(err))
		return Seed()
	}

	var records []itemRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		r.logger.Warn("decoding inventory slot failed, using seed data", zap.Error(err))
		return Seed()
	}

	items := make([]domain.InventoryItem, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		items = append(items, domain.InventoryItem{
			ID:            rec.ID,
			Name:          rec.Name,
			Category:      rec.Category,
			Supplier:      rec.Supplier,
			SKU:           rec.SKU,
			Barcode:       rec.Barcode,
			Stock:         rec.Stock,
			SellingPrice:  rec.SellingPrice,
			BuyingPrice:   rec.BuyingPrice,
			LastUpdated:   rec.LastUpdated,
			InitialStock:  rec.InitialStock,
			SoldToday:     rec.SoldToday,
			SoldWeek:      rec.SoldWeek,
			SalesVelocity: rec.SalesVelocity,
			ReorderPoint:  rec.ReorderPoint,
		})
	}

	return items
}

func (r *CacheRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	records := make([]itemRecord, 0, len(items))
	for _, it := range items {
		records = append(records, itemRecord{
			ID:            it.ID,
			Name:          it.Name,
			Category:      it.Category,
			Supplier:      it.Supplier,
			SKU:           it.SKU,
			Barcode:       it.Barcode,
			Stock:         it.Stock,
			SellingPrice:  it.SellingPrice,
			BuyingPrice:   it.BuyingPrice,
			LastUpdated:   it.LastUpdated,
			InitialStock:  it.InitialStock,
			SoldToday:     it.SoldToday,
			SoldWeek:      it.SoldWeek,
			SalesVelocity: it.SalesVelocity,
			ReorderPoint:  it.ReorderPoint,
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}

	if err := r.store.Set(ctx, cache.SlotInventory, payload); err != nil {
		return fmt.Errorf("writing inventory slot: %w", err)
	}
	return nil
}

// LoadPage restores the persisted page marker, defaulting to 1.
func (r *CacheRepository) LoadPage(ctx context.Context) int {
	payload, err := r.store.Get(ctx, cache.SlotPage)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			r.logger.Warn("reading page slot failed", zap.Error(err))
		}
		return 1
	}

	var page int
	if err := json.Unmarshal(payload, &page); err != nil || page < 1 {
		return 1
	}
	return page
}

func (r *CacheRepository) SavePage(ctx context.Context, page int) error {
	payload, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encoding page marker: %w", err)
	}
	if err := r.store.Set(ctx, cache.SlotPage, payload); err != nil {
		return fmt.Errorf("writing page slot: %w", err)
	}
	return nil
}
