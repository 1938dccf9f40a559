package ledger

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"stockdesk/internal/domain"
	apperrors "stockdesk/internal/errors"
	"stockdesk/internal/ledger/service"
	"stockdesk/internal/ledger/usecase"
	"stockdesk/internal/query"
)

type Controller struct {
	browser Browser
	mutator Mutator
	policy  domain.StatusPolicy
	logger  *zap.Logger
}

func NewController(browser Browser, mutator Mutator, policy domain.StatusPolicy, logger *zap.Logger) *Controller {
	return &Controller{
		browser: browser,
		mutator: mutator,
		policy:  policy,
		logger:  logger,
	}
}

// HandleBrowse serves the paginated, filtered ledger view.
// Query params: q, category, status, supplier (all repeatable or
// comma-separated), sort, dir, page.
func (c *Controller) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	statuses, err := parseStatuses(multiValue(q, "status"))
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	page := 0
	if raw := q.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.writeValidationError(w, "page must be a positive integer", apperrors.ValidationDetail{
				Field:   "page",
				Message: "page must be a positive integer",
			})
			return
		}
	}

	view := c.browser.Browse(r.Context(), usecase.BrowseQuery{
		Search:     q.Get("q"),
		Categories: multiValue(q, "category"),
		Statuses:   statuses,
		Suppliers:  multiValue(q, "supplier"),
		SortKey:    query.SortKey(q.Get("sort")),
		Direction:  query.Direction(q.Get("dir")),
		Page:       page,
	})

	items := make([]ItemView, 0, len(view.Result.Items))
	for _, it := range view.Result.Items {
		items = append(items, NewItemView(it, c.policy))
	}

	c.writeJSON(w, http.StatusOK, BrowseResponse{
		Items:       items,
		Total:       view.Result.Total,
		Page:        view.Result.Page,
		TotalPages:  view.Result.TotalPages,
		PageSize:    view.PageSize,
		Selected:    view.Selected,
		AllSelected: view.AllSelected,
	})
}

func (c *Controller) HandleAddItems(w http.ResponseWriter, r *http.Request) {
	var req AddItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	candidates := make([]service.NewItem, 0, len(req.Items))
	for _, it := range req.Items {
		candidates = append(candidates, service.NewItem{
			Name:          it.Name,
			Category:      it.Category,
			Supplier:      it.Supplier,
			SKU:           it.SKU,
			Barcode:       it.Barcode,
			Stock:         it.Stock,
			SellingPrice:  it.SellingPrice,
			BuyingPrice:   it.BuyingPrice,
			SalesVelocity: it.SalesVelocity,
			ReorderPoint:  it.ReorderPoint,
		})
	}

	added, err := c.mutator.AddItems(r.Context(), candidates)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		c.logger.Error("batch add failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusCreated, AddItemsResponse{Added: added})
}

func (c *Controller) HandleRemoveStock(w http.ResponseWriter, r *http.Request) {
	var req RemoveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if len(req.Lines) == 0 {
		c.writeValidationError(w, "lines is required", apperrors.ValidationDetail{
			Field:   "lines",
			Message: "lines must not be empty",
		})
		return
	}

	lines := make([]service.RemovalLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.RemovalLine{
			ID:        l.ID,
			Quantity:  l.Quantity,
			SalePrice: l.SalePrice,
		})
	}

	result := c.mutator.RemoveStock(r.Context(), lines)

	successes := make([]LineSuccessDTO, 0, len(result.Successes))
	for _, s := range result.Successes {
		successes = append(successes, LineSuccessDTO{
			ID:             s.ID,
			Quantity:       s.Quantity,
			RemainingStock: s.RemainingStock,
		})
	}
	failures := make([]LineFailureDTO, 0, len(result.Failures))
	for _, f := range result.Failures {
		failures = append(failures, LineFailureDTO{
			ID:       f.ID,
			Quantity: f.Quantity,
			Reason:   string(f.Reason),
		})
	}

	c.writeJSON(w, http.StatusOK, RemoveStockResponse{
		Status:    string(result.Status),
		Successes: successes,
		Failures:  failures,
	})
}

func (c *Controller) HandleDeleteItems(w http.ResponseWriter, r *http.Request) {
	var req DeleteItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if len(req.IDs) == 0 {
		c.writeValidationError(w, "ids is required", apperrors.ValidationDetail{
			Field:   "ids",
			Message: "ids must not be empty",
		})
		return
	}

	deleted := c.mutator.DeleteItems(r.Context(), req.IDs)
	c.writeJSON(w, http.StatusOK, DeleteItemsResponse{Deleted: deleted})
}

// HandleResolve maps a scanned or typed code to an item. A miss is a 404
// with found=false; the caller decides whether that means "create it" or
// "report an error".
func (c *Controller) HandleResolve(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.URL.Query().Get("code"))
	if code == "" {
		c.writeValidationError(w, "code is required", apperrors.ValidationDetail{
			Field:   "code",
			Message: "code must not be empty",
		})
		return
	}

	item, err := c.mutator.ResolveCode(code)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, ResolveResponse{Found: false})
			return
		}
		c.logger.Error("code resolution failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	view := NewItemView(item, c.policy)
	c.writeJSON(w, http.StatusOK, ResolveResponse{Found: true, Item: &view})
}

func (c *Controller) HandleSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var (
		selected    []string
		allSelected bool
	)
	switch req.Action {
	case "toggle":
		if req.ID == "" {
			c.writeValidationError(w, "id is required for toggle", apperrors.ValidationDetail{
				Field:   "id",
				Message: "id must not be empty",
			})
			return
		}
		selected, allSelected = c.browser.ToggleSelection(req.ID)
	case "toggleAll":
		selected, allSelected = c.browser.ToggleAll()
	case "clear":
		selected, allSelected = c.browser.ClearSelection()
	default:
		c.writeValidationError(w, "unknown selection action", apperrors.ValidationDetail{
			Field:   "action",
			Message: "action must be toggle, toggleAll or clear",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, SelectionResponse{Selected: selected, AllSelected: allSelected})
}

func multiValue(q map[string][]string, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseStatuses(raw []string) ([]domain.Status, error) {
	statuses := make([]domain.Status, 0, len(raw))
	for _, r := range raw {
		switch s := domain.Status(r); s {
		case domain.StatusInStock, domain.StatusLowStock, domain.StatusOutOfStock:
			statuses = append(statuses, s)
		default:
			msg := "status must be one of IN_STOCK, LOW_STOCK, OUT_OF_STOCK"
			return nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
				Field:   "status",
				Message: msg,
			})
		}
	}
	return statuses, nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeInternalError(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
