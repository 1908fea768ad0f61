package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rates", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rates", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rates", Name: "upstream_requests_total", Help: "Outbound provider requests."},
		[]string{"endpoint", "status"},
	)
	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rates", Name: "upstream_request_duration_seconds",
			Help:    "Outbound provider request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rates", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	HotelsAggregated = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rates", Name: "hotels_aggregated_per_search",
			Help:    "Hotels returned per aggregated search.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)

// Serve starts the optional standalone metrics listener; disabled when
// METRICS_ADDR is unset.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, UpstreamRequests, UpstreamLatency, CacheEvents, HotelsAggregated)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveUpstream(endpoint string, status int, dur time.Duration) {
	UpstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	UpstreamLatency.WithLabelValues(endpoint).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveAggregation(hotels int) {
	HotelsAggregated.Observe(float64(hotels))
}
