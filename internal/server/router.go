package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"stockdesk/internal/infrastructure/metrics"
	"stockdesk/internal/ledger"
	"stockdesk/internal/monitor"
)

func NewRouter(
	ledgerCtrl *ledger.Controller,
	monitorCtrl *monitor.Controller,
	m *metrics.Metrics,
	exposeMetrics bool,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		r.Handle("/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", ledgerCtrl.HandleBrowse)
			r.Post("/items", ledgerCtrl.HandleAddItems)
			r.Post("/removals", ledgerCtrl.HandleRemoveStock)
			r.Post("/deletions", ledgerCtrl.HandleDeleteItems)
			r.Get("/resolve", ledgerCtrl.HandleResolve)
			r.Post("/selection", ledgerCtrl.HandleSelection)
		})
		r.Route("/monitor", func(r chi.Router) {
			r.Get("/stock", monitorCtrl.HandleStockView)
			r.Get("/summary", monitorCtrl.HandleSummary)
		})
	})

	return r
}
