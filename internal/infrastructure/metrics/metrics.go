package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	ItemsAdded      prometheus.Counter
	StockRemoved    prometheus.Counter
	RemovalFailures prometheus.Counter
	ItemsDeleted    prometheus.Counter
	CacheFailures   prometheus.Counter
	QueryDuration   prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ItemsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockdesk_items_added_total",
			Help: "Items appended to the ledger.",
		}),
		StockRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockdesk_stock_removed_total",
			Help: "Units of stock deducted by removal operations.",
		}),
		RemovalFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockdesk_removal_failures_total",
			Help: "Removal lines rejected (insufficient stock, unknown id).",
		}),
		ItemsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockdesk_items_deleted_total",
			Help: "Items removed from the ledger by bulk delete.",
		}),
		CacheFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockdesk_cache_failures_total",
			Help: "Best-effort cache writes or reads that failed.",
		}),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockdesk_query_duration_seconds",
			Help:    "Latency of ledger browse queries.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
