// Package metrics exposes relative-neighborhood-graph build statistics as
// Prometheus metrics. A Collector implements rng.Observer, so it plugs into
// rng.Build through rng.WithObserver.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/rngraph/rng"
)

// Namespace prefixes every metric name.
const Namespace = "rngraph"

// Collector groups the build metrics. Register it once per registry.
type Collector struct {
	// Builds counts successful builds.
	Builds prometheus.Counter
	// Points counts input points across builds.
	Points prometheus.Counter
	// Pairs counts candidate pairs examined.
	Pairs prometheus.Counter
	// Edges counts undirected edges emitted.
	Edges prometheus.Counter
	// DominanceChecks counts third-point comparisons.
	DominanceChecks prometheus.Counter
	// Duration observes build wall time.
	Duration prometheus.Histogram
}

var _ rng.Observer = (*Collector)(nil)

// New creates a Collector and registers it on reg.
// A nil reg leaves the metrics unregistered (useful in tests).
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "builds_total",
			Help:      "Total number of relative neighborhood graphs built",
		}),
		Points: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "points_total",
			Help:      "Total number of input points processed",
		}),
		Pairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pairs_total",
			Help:      "Total number of candidate point pairs examined",
		}),
		Edges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "edges_total",
			Help:      "Total number of undirected edges emitted",
		}),
		DominanceChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "dominance_checks_total",
			Help:      "Total number of third-point dominance comparisons",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall time of a single build in seconds",
			// From tiny clouds (µs) to O(n³) scans of a few thousand points.
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60, 300},
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, m := range []prometheus.Collector{c.Builds, c.Points, c.Pairs, c.Edges, c.DominanceChecks, c.Duration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveBuild records one build.
func (c *Collector) ObserveBuild(s rng.BuildStats) {
	c.Builds.Inc()
	c.Points.Add(float64(s.Points))
	c.Pairs.Add(float64(s.Pairs))
	c.Edges.Add(float64(s.Linked))
	c.DominanceChecks.Add(float64(s.DominanceChecks))
	c.Duration.Observe(s.Duration.Seconds())
}

// WriteText gathers g and writes it in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
