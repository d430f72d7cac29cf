package report

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Metrics duración y fallos de los reportes. Un *Metrics nil no registra nada.
type Metrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewMetrics crea las métricas y las registra en reg (si no es nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "catalogo",
				Subsystem: "report",
				Name:      "duration_seconds",
				Help:      "Duración de la construcción de reportes en segundos",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"report"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalogo",
				Subsystem: "report",
				Name:      "failures_total",
				Help:      "Reportes fallidos por motivo",
			},
			[]string{"report", "reason"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.duration, m.failures)
	}
	return m
}

func (m *Metrics) observe(report string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	if err != nil {
		m.failures.WithLabelValues(report, failureReason(err)).Inc()
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
