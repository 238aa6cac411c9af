package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClassifierRequestsTotal tracks outbound calls to the classifier service.
	ClassifierRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartscale_classifier_requests_total",
			Help: "Total number of classifier RPCs (by method and status code).",
		},
		[]string{"method", "code"},
	)

	// ClassifierRequestDuration measures classifier RPC latency.
	ClassifierRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartscale_classifier_request_duration_seconds",
			Help:    "Duration of classifier RPCs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms → ~10s
		},
		[]string{"method"},
	)

	// PredictionsTotal counts predict requests by outcome.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartscale_predictions_total",
			Help: "Predict requests by outcome (priced, unpriced, failed).",
		},
		[]string{"outcome"},
	)

	// WeightEstimatesTotal counts estimates by confidence tag.
	WeightEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartscale_weight_estimates_total",
			Help: "Weight estimates by confidence tag.",
		},
		[]string{"confidence"},
	)

	// PriceCalculationsTotal counts price lookups by outcome.
	PriceCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartscale_price_calculations_total",
			Help: "Price calculations by outcome (ok, not_found, error).",
		},
		[]string{"outcome"},
	)

	// TransactionsRecordedTotal counts appended transactions by source.
	TransactionsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartscale_transactions_recorded_total",
			Help: "Transactions appended to the store (by source).",
		},
		[]string{"source"},
	)

	// CacheOperationsTotal counts cache reads and writes by result.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartscale_cache_operations_total",
			Help: "Cache operations by kind and result (hit, miss, error, ok).",
		},
		[]string{"operation", "result"},
	)

	// HTTPRequestsTotal counts served requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartscale_http_requests_total",
			Help: "HTTP requests served (by method, route and status).",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartscale_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// IncClassifierRequest increments the classifier request counter.
func IncClassifierRequest(method, code string) {
	ClassifierRequestsTotal.WithLabelValues(method, code).Inc()
}

// ObserveDuration records elapsed time since start into a HistogramVec.
func ObserveDuration(metric *prometheus.HistogramVec, start time.Time, labels ...string) {
	metric.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
}

func IncPrediction(outcome string) {
	PredictionsTotal.WithLabelValues(outcome).Inc()
}

func IncWeightEstimate(confidence string) {
	WeightEstimatesTotal.WithLabelValues(confidence).Inc()
}

func IncPriceCalculation(outcome string) {
	PriceCalculationsTotal.WithLabelValues(outcome).Inc()
}

func IncTransactionRecorded(source string) {
	TransactionsRecordedTotal.WithLabelValues(source).Inc()
}

func IncCache(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

func IncHTTPRequest(method, route, status string) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}
