package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type CacheMetrics struct {
	LookupsTotal *prometheus.CounterVec
}

// BusinessMetrics tracks payment outcomes and the trailing 24h window
// refreshed by the payment statistics job.
type BusinessMetrics struct {
	PaymentsRecordedTotal *prometheus.CounterVec
	WindowPaymentCount    prometheus.Gauge
	WindowPaymentVolume   prometheus.Gauge
}

const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation"
	OutcomeNotFound   = "not_found"
	OutcomeStoreError = "store_error"
)

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emi_payments_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "emi_payments_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "emi_payments_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Cache = CacheMetrics{
		LookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emi_payments_cache_lookups_total",
				Help: "Customer cache lookups by result (hit, miss, error).",
			},
			[]string{"result"},
		),
	}

	Business = BusinessMetrics{
		PaymentsRecordedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emi_payments_payments_recorded_total",
				Help: "Record-payment attempts by outcome.",
			},
			[]string{"outcome"},
		),
		WindowPaymentCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "emi_payments_window_payment_count",
				Help: "Number of payments recorded in the trailing 24 hours.",
			},
		),
		WindowPaymentVolume: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "emi_payments_window_payment_volume",
				Help: "Sum of payment amounts recorded in the trailing 24 hours.",
			},
		),
	}
)

func RecordHTTPRequest(method, path, code string, duration time.Duration) {
	HTTP.RequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordCacheLookup(result string) {
	Cache.LookupsTotal.WithLabelValues(result).Inc()
}

func RecordPayment(outcome string) {
	Business.PaymentsRecordedTotal.WithLabelValues(outcome).Inc()
}

func SetPaymentWindowStats(count int64, volume float64) {
	Business.WindowPaymentCount.Set(float64(count))
	Business.WindowPaymentVolume.Set(volume)
}
