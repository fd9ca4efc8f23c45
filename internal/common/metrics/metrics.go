package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock

type Metrics interface {
	PrometheusRegisterer() prometheus.Registerer
	PrometheusGatherer() prometheus.Gatherer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetReconcilePrometheus() *ReconcilePrometheusMetrics
	// WriteTextfile dumps every collected metric in node exporter textfile format.
	WriteTextfile(path string) error
}

type metrics struct {
	reg               *prometheus.Registry
	httpClientMetrics *HTTPClientPrometheusMetrics
	reconcileMetrics  *ReconcilePrometheusMetrics
}

// New uses its own registry so a run only reports what it collected.
func New(serviceName string) Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg, serviceName),
		reconcileMetrics:  newReconcilePrometheusMetrics(reg, serviceName),
	}
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) PrometheusGatherer() prometheus.Gatherer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetReconcilePrometheus() *ReconcilePrometheusMetrics {
	return m.reconcileMetrics
}

func (m *metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
