// Package metrics holds the prometheus collectors of the engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Cache lookup labels.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
)

var Calculations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "islamicfin",
	Name:      "calculations_total",
	Help:      "Total calculations by operation and outcome.",
}, []string{"operation", "outcome"})

var CalculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "islamicfin",
	Name:      "calculation_duration_seconds",
	Help:      "Time spent validating and computing a calculation.",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
}, []string{"operation"})

var PriceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "islamicfin",
	Name:      "price_fetch_total",
	Help:      "External price lookups by source and outcome.",
}, []string{"source", "outcome"})

var PriceCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "islamicfin",
	Name:      "price_cache_total",
	Help:      "Metal price cache lookups by result.",
}, []string{"result"})

var HistoryWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "islamicfin",
	Name:      "history_writes_total",
	Help:      "Calculation history inserts by outcome.",
}, []string{"outcome"})

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
