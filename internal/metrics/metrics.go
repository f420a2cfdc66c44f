// Package metrics defines the Prometheus collectors for the analysis
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles all collectors. A nil *Metrics is a valid no-op receiver so
// tests and the one-shot mode can skip registration.
type Metrics struct {
	analysesTotal      prometheus.Counter
	offerFetchFailures prometheus.Counter
	analysisDuration   prometheus.Histogram
}

// New registers the collectors with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		analysesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kvotizza_analyses_total",
			Help: "Number of completed analysis passes.",
		}),
		offerFetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "kvotizza_offer_fetch_failures_total",
			Help: "Number of per-match offer fetches that failed and degraded to unavailable.",
		}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "kvotizza_analysis_duration_seconds",
			Help:    "Wall time of one analysis pass including offer fetches.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// AnalysisDone records one completed pass.
func (m *Metrics) AnalysisDone(seconds float64) {
	if m == nil {
		return
	}
	m.analysesTotal.Inc()
	m.analysisDuration.Observe(seconds)
}

// OfferFetchFailed records one degraded per-match fetch.
func (m *Metrics) OfferFetchFailed() {
	if m == nil {
		return
	}
	m.offerFetchFailures.Inc()
}
