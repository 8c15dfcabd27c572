package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics собирает метрики сервиса для Prometheus
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	statusCacheOps      *prometheus.CounterVec
	engineEvaluations   *prometheus.CounterVec
}

// New регистрирует и возвращает коллектор метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		statusCacheOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "status_cache_operations_total",
			Help:        "Status response cache operations by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		engineEvaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "status_engine_evaluations_total",
			Help:        "Open-status evaluations by resulting reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncCacheHit фиксирует попадание в кеш статусов
func (m *Metrics) IncCacheHit() {
	m.statusCacheOps.WithLabelValues("hit").Inc()
}

// IncCacheMiss фиксирует промах кеша статусов
func (m *Metrics) IncCacheMiss() {
	m.statusCacheOps.WithLabelValues("miss").Inc()
}

// IncCacheError фиксирует ошибку кеша статусов
func (m *Metrics) IncCacheError() {
	m.statusCacheOps.WithLabelValues("error").Inc()
}

// IncEngineEvaluation фиксирует вычисление статуса с итоговой причиной
func (m *Metrics) IncEngineEvaluation(reason string) {
	m.engineEvaluations.WithLabelValues(reason).Inc()
}
