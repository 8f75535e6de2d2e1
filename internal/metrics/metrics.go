package metrics

import "github.com/prometheus/client_golang/prometheus"

// Embedding Prometheus metrics.
var (
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchd",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "embedding_errors_total",
			Help:      "Total embedding errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "searches_total",
			Help:      "Total number of searches by requested mode",
		},
		[]string{"mode"},
	)

	SearchFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "search_fallbacks_total",
			Help:      "Total number of degraded search paths taken",
		},
		[]string{"from", "to"},
	)

	SearchResultCount = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchd",
			Name:      "search_result_count",
			Help:      "Number of products returned per search",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"mode"},
	)
)

var metricsRegistered bool

// Register registers all searchd Prometheus metrics. Must be called once from main.
func Register() {
	if metricsRegistered {
		return
	}
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(EmbeddingErrorsTotal)
	prometheus.MustRegister(EmbeddingCacheTotal)
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchFallbacksTotal)
	prometheus.MustRegister(SearchResultCount)
	metricsRegistered = true
}
