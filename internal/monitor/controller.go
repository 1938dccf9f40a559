package monitor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"stockdesk/internal/domain"
	apperrors "stockdesk/internal/errors"
	monitorservice "stockdesk/internal/monitor/service"
	"stockdesk/internal/query"
)

type StockViewer interface {
	StockView(q monitorservice.StockQuery) query.Result
	Summary() monitorservice.Summary
	Policy() domain.StatusPolicy
}

type Controller struct {
	svc    StockViewer
	logger *zap.Logger
}

func NewController(svc StockViewer, logger *zap.Logger) *Controller {
	return &Controller{svc: svc, logger: logger}
}

func (c *Controller) HandleStockView(w http.ResponseWriter, r *http.Request) {
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

	result := c.svc.StockView(monitorservice.StockQuery{
		Search:     q.Get("q"),
		Categories: multiValue(q, "category"),
		Statuses:   statuses,
		Suppliers:  multiValue(q, "supplier"),
		SortKey:    query.SortKey(q.Get("sort")),
		Direction:  query.Direction(q.Get("dir")),
		Page:       page,
	})

	policy := c.svc.Policy()
	items := make([]MonitorItemView, 0, len(result.Items))
	for _, it := range result.Items {
		items = append(items, NewMonitorItemView(it, policy))
	}

	c.writeJSON(w, http.StatusOK, StockViewResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

func (c *Controller) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sum := c.svc.Summary()
	c.writeJSON(w, http.StatusOK, SummaryResponse{
		TotalItems:    sum.TotalItems,
		InStock:       sum.InStock,
		LowStock:      sum.LowStock,
		OutOfStock:    sum.OutOfStock,
		BelowReorder:  sum.BelowReorder,
		StockValue:    sum.StockValue,
		PotentialGain: sum.PotentialGain,
	})
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

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
