// Package metrics exposes Prometheus metrics of the API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/nudge/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the subset of [Collector] used by the HTTP layer and workers.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordRateLimited()
	SetItemCounts(counts map[models.Status]int)
}

// Collector holds the server metrics.
type Collector struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	rateLimited prometheus.Counter
	items       *prometheus.GaugeVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nudge_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nudge_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nudge_http_rate_limited_total",
			Help: "Requests rejected by the per-user rate limit.",
		}),
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "nudge_items",
			Help: "Active items by expiry status at the last digest run.",
		}, []string{"status"}),
	}

	reg.MustRegister(c.requests, c.latency, c.rateLimited, c.items)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// SetItemCounts publishes the digest counts. Statuses missing from counts
// are reported as zero.
func (c *Collector) SetItemCounts(counts map[models.Status]int) {
	for _, status := range models.Statuses {
		c.items.WithLabelValues(status.String()).Set(float64(counts[status]))
	}
}

// Handler serves the metrics gathered by gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
