package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPClientPrometheusMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestFailures *prometheus.CounterVec
}

func newHTTPClientPrometheusMetrics(reg prometheus.Registerer, serviceName string) *HTTPClientPrometheusMetrics {
	namespace := FlattenName(serviceName)
	mtc := &HTTPClientPrometheusMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "external_api",
				Name:      "request_duration_seconds",
				Help:      "Duration of Tangerine and Google API requests in seconds.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"service", "method", "endpoint", "response_code"},
		),
		requestFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "external_api",
				Name:      "request_failures_total",
				Help:      "Requests that got no response or a 4xx/5xx status.",
			},
			[]string{"service", "endpoint"},
		),
	}

	reg.MustRegister(mtc.requestDuration, mtc.requestFailures)

	return mtc
}

// Record observes one request. statusCode 0 means no response was received.
func (m *HTTPClientPrometheusMetrics) Record(duration time.Duration, service, method, endpoint string, statusCode int) {
	if m == nil {
		return
	}

	m.requestDuration.WithLabelValues(service, method, endpoint, fmt.Sprint(statusCode)).
		Observe(duration.Seconds())

	if statusCode == 0 || statusCode >= 400 {
		m.requestFailures.WithLabelValues(service, endpoint).Inc()
	}
}
