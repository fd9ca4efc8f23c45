package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MarcDufresne/tangerine-account-checker/internal/models"
)

type ReconcilePrometheusMetrics struct {
	rows          *prometheus.CounterVec
	lastRun       *prometheus.GaugeVec
	runDuration   prometheus.Gauge
	holdingMarket *prometheus.GaugeVec
}

func newReconcilePrometheusMetrics(reg prometheus.Registerer, serviceName string) *ReconcilePrometheusMetrics {
	namespace := FlattenName(serviceName)
	mtc := &ReconcilePrometheusMetrics{
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reconciled_rows_total",
				Help:      "Number of sheet rows written by action",
			},
			[]string{"sheet", "action"},
		),
		lastRun: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time the last run finished, by status",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_duration_seconds",
				Help:      "Duration of the last run",
			},
		),
		holdingMarket: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "holding_market_value",
				Help:      "Market value of the holding written for an account",
			},
			[]string{"account"},
		),
	}

	reg.MustRegister(mtc.rows, mtc.lastRun, mtc.runDuration, mtc.holdingMarket)

	return mtc
}

func (m *ReconcilePrometheusMetrics) Record(report models.RunReport) {
	if m == nil {
		return
	}

	for _, res := range report.Results {
		m.rows.WithLabelValues(res.Sheet, string(res.Action)).Inc()

		market, _ := res.Values.MarketValue.Float64()
		m.holdingMarket.WithLabelValues(res.Account).Set(market)
	}

	finishedAt := report.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}
	m.lastRun.WithLabelValues(report.Status()).Set(float64(finishedAt.Unix()))
	m.runDuration.Set(finishedAt.Sub(report.StartedAt).Seconds())
}
