package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "route"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed.",
		},
	)

	// CartOperations counts committed cart mutations by operation name.
	CartOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of committed cart mutations.",
		},
		[]string{"operation"},
	)
	// CartSyncFailures counts best-effort cart syncs that did not reach the receiver.
	CartSyncFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_sync_failures_total",
			Help: "Total number of failed cart sync calls.",
		},
		[]string{"action"},
	)
	// CatalogImportProducts counts products handled by the importer by outcome.
	CatalogImportProducts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_import_products_total",
			Help: "Total number of products processed by catalog imports.",
		},
		[]string{"outcome"},
	)
)

const (
	ImportOutcomeImported = "imported"
	ImportOutcomeSkipped  = "skipped"
	ImportOutcomeFailed   = "failed"
)

// Instrument wraps next with the promhttp request counter, latency histogram
// and in-flight gauge, all labelled with the mux pattern as route.
func Instrument(route string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}

	return promhttp.InstrumentHandlerInFlight(httpRequestsInFlight,
		promhttp.InstrumentHandlerDuration(httpRequestsDuration.MustCurryWith(labels),
			promhttp.InstrumentHandlerCounter(httpRequestsTotal.MustCurryWith(labels), next),
		),
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
