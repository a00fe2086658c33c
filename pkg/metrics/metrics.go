package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector agrupa as métricas Prometheus do serviço de rankings
type Collector struct {
	registry *prometheus.Registry

	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	Refreshes        prometheus.Counter
	ResolveFailures  *prometheus.CounterVec
	ProviderDuration prometheus.Histogram
}

// NewCollector cria um registry próprio, então várias instâncias podem coexistir em testes
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_cache_hits_total",
			Help:      "Domains served from the ranking store",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_cache_misses_total",
			Help:      "Domains whose stored ranking was absent or stale",
		}),
		Refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_refreshes_total",
			Help:      "Successful delete-and-insert refreshes",
		}),
		ResolveFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_resolve_failures_total",
			Help:      "Failed domain resolutions by error code",
		}, []string{"code"}),
		ProviderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_provider_duration_seconds",
			Help:      "Latency of ranking provider calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		c.CacheHits,
		c.CacheMisses,
		c.Refreshes,
		c.ResolveFailures,
		c.ProviderDuration,
		collectors.NewGoCollector(),
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
