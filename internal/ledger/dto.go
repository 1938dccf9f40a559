package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"stockdesk/internal/domain"
)

type ItemView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Supplier       string          `json:"supplier,omitempty"`
	SKU            string          `json:"sku"`
	Barcode        string          `json:"barcode,omitempty"`
	Stock          int             `json:"stock"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	BuyingPrice    decimal.Decimal `json:"buyingPrice"`
	ExpectedProfit decimal.Decimal `json:"expectedProfit"`
	ProfitMargin   decimal.Decimal `json:"profitMargin"`
	Status         domain.Status   `json:"status"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

func NewItemView(it domain.InventoryItem, policy domain.StatusPolicy) ItemView {
	return ItemView{
		ID:             it.ID,
		Name:           it.Name,
		Category:       it.Category,
		Supplier:       it.Supplier,
		SKU:            it.SKU,
		Barcode:        it.Barcode,
		Stock:          it.Stock,
		SellingPrice:   it.SellingPrice,
		BuyingPrice:    it.BuyingPrice,
		ExpectedProfit: it.ExpectedProfit(),
		ProfitMargin:   it.ProfitMargin(),
		Status:         it.StockStatus(policy),
		LastUpdated:    it.LastUpdated,
	}
}

type BrowseResponse struct {
	Items       []ItemView `json:"items"`
	Total       int        `json:"total"`
	Page        int        `json:"page"`
	TotalPages  int        `json:"totalPages"`
	PageSize    int        `json:"pageSize"`
	Selected    []string   `json:"selected"`
	AllSelected bool       `json:"allSelected"`
}

type AddItemsRequest struct {
	Items []NewItemDTO `json:"items"`
}

type NewItemDTO struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Supplier      string  `json:"supplier,omitempty"`
	SKU           string  `json:"sku"`
	Barcode       string  `json:"barcode,omitempty"`
	Stock         int     `json:"stock"`
	SellingPrice  string  `json:"sellingPrice"`
	BuyingPrice   string  `json:"buyingPrice"`
	SalesVelocity float64 `json:"salesVelocity,omitempty"`
	ReorderPoint  int     `json:"reorderPoint,omitempty"`
}

type AddItemsResponse struct {
	Added int `json:"added"`
}

type RemoveStockRequest struct {
	Lines []RemovalLineDTO `json:"lines"`
}

type RemovalLineDTO struct {
	ID        string `json:"id"`
	Quantity  int    `json:"quantity"`
	SalePrice string `json:"salePrice,omitempty"`
}

type RemoveStockResponse struct {
	Status    string           `json:"status"`
	Successes []LineSuccessDTO `json:"successes"`
	Failures  []LineFailureDTO `json:"failures"`
}

type LineSuccessDTO struct {
	ID             string `json:"id"`
	Quantity       int    `json:"quantity"`
	RemainingStock int    `json:"remainingStock"`
}

type LineFailureDTO struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

type DeleteItemsRequest struct {
	IDs []string `json:"ids"`
}

type DeleteItemsResponse struct {
	Deleted int `json:"deleted"`
}

type ResolveResponse struct {
	Found bool      `json:"found"`
	Item  *ItemView `json:"item,omitempty"`
}

type SelectionRequest struct {
	// Action is "toggle", "toggleAll" or "clear".
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

type SelectionResponse struct {
	Selected    []string `json:"selected"`
	AllSelected bool     `json:"allSelected"`
}
