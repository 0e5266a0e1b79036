// Package metrics expone métricas Prometheus del API de consulta:
//   - http_request_total / http_request_duration_seconds / http_request_in_flight
//   - login_attempts_total por endpoint y resultado
//   - database_up según el último ping del monitor de salud
//   - rate_limiter_buckets_total
//
// Todo se registra en el registry por defecto al inicializar el paquete.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultado de un intento de login.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Kiosk login attempts by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	DatabaseUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_up",
			Help: "1 if the last database ping succeeded, 0 otherwise",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Number of per-IP rate limiter buckets currently held",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(LoginAttempts)
	prometheus.MustRegister(DatabaseUp)
	prometheus.MustRegister(RateLimiterBucketsTotal)
}

func ObserveLogin(endpoint, outcome string) {
	LoginAttempts.WithLabelValues(endpoint, outcome).Inc()
}

func SetDatabaseUp(up bool) {
	if up {
		DatabaseUp.Set(1)
		return
	}
	DatabaseUp.Set(0)
}

// Handler sirve /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
