// Package metrics exposes prometheus instrumentation for the quote funnel.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the funnel's prometheus collectors.
type Registry struct {
	reg *prometheus.Registry

	QuotesComputed     prometheus.Counter
	QuotesNotPriceable prometheus.Counter
	SnapshotsBuilt     prometheus.Counter
	LeadsSaved         prometheus.Counter
	RoutingCacheHits   prometheus.Counter
	RoutingCacheMisses prometheus.Counter
	RoutingFallbacks   prometheus.Counter
	ComputeSeconds     prometheus.Histogram
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	computed := prometheus.NewCounter(prometheus.CounterOpts{Name: "moverz_quotes_computed_total"})
	notPriceable := prometheus.NewCounter(prometheus.CounterOpts{Name: "moverz_quotes_not_priceable_total"})
	snapshots := prometheus.NewCounter(prometheus.CounterOpts{Name: "moverz_snapshots_built_total"})
	leads := prometheus.NewCounter(prometheus.CounterOpts{Name: "moverz_leads_saved_total"})
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "moverz_routing_cache_hits_total"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "moverz_routing_cache_misses_total"})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{Name: "moverz_routing_fallbacks_total"})
	computeSec := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "moverz_compute_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(computed, notPriceable, snapshots, leads, hits, misses, fallbacks, computeSec)
	return &Registry{
		reg:                r,
		QuotesComputed:     computed,
		QuotesNotPriceable: notPriceable,
		SnapshotsBuilt:     snapshots,
		LeadsSaved:         leads,
		RoutingCacheHits:   hits,
		RoutingCacheMisses: misses,
		RoutingFallbacks:   fallbacks,
		ComputeSeconds:     computeSec,
	}
}

// Handler returns the /metrics HTTP handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
