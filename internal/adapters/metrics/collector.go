package metrics

import (
	"net/http"
	"time"

	"github.com/bnema/lens-agent/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the agent's Prometheus metrics on a private registry, so several
// collectors can coexist in one process (tests, one-shot commands).
type Collector struct {
	registry *prometheus.Registry

	publishes          *prometheus.CounterVec
	publishDuration    *prometheus.HistogramVec
	visibilityAttempts prometheus.Histogram
	ticks              *prometheus.CounterVec
	tickDuration       *prometheus.HistogramVec
	cacheLookups       *prometheus.CounterVec
}

var _ ports.Metrics = (*Collector)(nil)

func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_total",
			Help:      "Publish attempts by resolution path and outcome.",
		}, []string{"path", "outcome"}),
		publishDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "publish_duration_seconds",
			Help:      "End-to-end publish duration including visibility polling.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"path"}),
		visibilityAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "visibility_attempts",
			Help:      "Fetch-by-hash attempts needed before a published post became visible.",
			Buckets:   []float64{1, 2, 3, 4, 5, 8, 10},
		}),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loop_ticks_total",
			Help:      "Loop ticks by loop and status.",
		}, []string{"loop", "status"}),
		tickDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "loop_tick_duration_seconds",
			Help:      "Loop tick duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"loop"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Entity cache lookups by result.",
		}, []string{"result"}),
	}

	c.registry.MustRegister(
		c.publishes,
		c.publishDuration,
		c.visibilityAttempts,
		c.ticks,
		c.tickDuration,
		c.cacheLookups,
	)

	return c
}

func (c *Collector) ObservePublish(path string, outcome string, duration time.Duration) {
	c.publishes.WithLabelValues(path, outcome).Inc()
	c.publishDuration.WithLabelValues(path).Observe(duration.Seconds())
}

func (c *Collector) ObserveVisibilityAttempts(attempts int) {
	c.visibilityAttempts.Observe(float64(attempts))
}

func (c *Collector) ObserveTick(loop string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.ticks.WithLabelValues(loop, status).Inc()
	c.tickDuration.WithLabelValues(loop).Observe(duration.Seconds())
}

func (c *Collector) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(result).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
