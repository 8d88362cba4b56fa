// Package server exposes the calculation engine over HTTP: per-source
// calculation, batch aggregation and factor table listing, with Prometheus
// metrics and structured request logging.
package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// calculationsTotal counts engine invocations by category and outcome
	// (ok, or the kind of the first warning).
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carbonscope_calculations_total",
			Help: "Total number of emission source calculations",
		},
		[]string{"category", "outcome"},
	)

	// calculationDuration tracks end-to-end engine latency per request.
	calculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "carbonscope_calculation_duration_seconds",
			Help:    "Duration of emission calculations in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// warningsTotal counts data-quality warnings surfaced to callers.
	warningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carbonscope_warnings_total",
			Help: "Total number of data warnings returned by the engine",
		},
		[]string{"kind"},
	)

	// httpRequestsTotal counts HTTP requests by route, method and status.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carbonscope_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
)
