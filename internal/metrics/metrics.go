// Package metrics регистрирует метрики Prometheus сервиса.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coleta_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coleta_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route"})
	RankRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coleta_rank_requests_total",
		Help: "Total number of disposal point ranking calls by filter mode",
	}, []string{"filter"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coleta_cache_hits_total",
		Help: "Total redis cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coleta_cache_misses_total",
		Help: "Total redis cache misses",
	})
	RouteResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coleta_route_resolutions_total",
		Help: "Route lookups by the source that served them",
	}, []string{"source"})
	TrackerEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coleta_tracker_events_total",
		Help: "Truck position events by publish status",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(RankRequestsTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(RouteResolutionsTotal)
	prometheus.MustRegister(TrackerEventsTotal)
}

// Handler возвращает обработчик /metrics
func Handler() http.Handler { return promhttp.Handler() }
