// Package observability expone métricas Prometheus del motor de riesgo y de la API HTTP.
package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "trazabilidad"

// Metrics agrupa los colectores. Se registran en el Registerer recibido para que los tests
// puedan usar un registro aislado.
type Metrics struct {
	AssessmentsTotal    *prometheus.CounterVec
	AssessmentScore     prometheus.Histogram
	AnomaliesFlagged    prometheus.Gauge
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics crea y registra los colectores.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "risk_assessments_total",
				Help:      "Evaluaciones de riesgo por origen (part, manual) y nivel.",
			},
			[]string{"source", "level"},
		),
		AssessmentScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Distribución de scores de riesgo.",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		}),
		AnomaliesFlagged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "anomalous_parts",
			Help:      "Piezas marcadas como anómalas en la última agregación.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Peticiones HTTP por método, ruta y clase de status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latencia de peticiones HTTP en segundos.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
	reg.MustRegister(
		m.AssessmentsTotal,
		m.AssessmentScore,
		m.AnomaliesFlagged,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)
	return m
}

// ObserveAssessment registra una evaluación (implementa el observer del servicio de riesgo).
func (m *Metrics) ObserveAssessment(source, level string, score float64) {
	m.AssessmentsTotal.WithLabelValues(source, level).Inc()
	m.AssessmentScore.Observe(score)
}

// ObserveAnomalies fija el número de piezas anómalas de la última corrida.
func (m *Metrics) ObserveAnomalies(n int) {
	m.AnomaliesFlagged.Set(float64(n))
}

// Middleware registra conteo y latencia por ruta (patrón, no path real, para acotar cardinalidad).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		m.HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), path, statusBucket(status)).Inc()
		return err
	}
}

// statusBucket agrupa códigos HTTP en 2xx, 3xx, 4xx, 5xx.
func statusBucket(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}
