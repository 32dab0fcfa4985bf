package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CacheOps - операции TTL-кэша ответов, по имени кэша и типу операции.
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Response cache operations",
		},
		[]string{"cache", "op"}, // hit|miss|expired|set|invalidated
	)
	// CacheEntries - число записей в кэше (включая ещё не вычищенные просроченные).
	CacheEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Number of entries currently held by the response cache",
		},
		[]string{"cache"},
	)
)

var (
	// APIRequestDuration - длительность запросов к бэкенду.
	// status = HTTP-код ответа либо "error" для транспортных ошибок.
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Duration of requests to the storefront backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
	// AuthShortCircuits - обращения, отклонённые локально из-за отсутствия токена.
	AuthShortCircuits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_required_total",
			Help: "Service calls rejected locally because no session token was present",
		},
		[]string{"operation"},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует метрики в глобальном реестре. Повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(CacheOps, CacheEntries, APIRequestDuration, AuthShortCircuits)
	})
}
