package iiko

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics — метрики запросов к iiko API.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics регистрирует метрики в reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iiko_client_requests_total",
			Help: "Total requests sent to iiko API by endpoint and HTTP code (0 = transport failure)",
		}, []string{"endpoint", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iiko_client_request_duration_seconds",
			Help:    "iiko API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) observe(endpoint string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
