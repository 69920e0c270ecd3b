package app

import (
	"io"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/rngraph/internal/config"
	"github.com/katalvlaran/rngraph/metrics"
)

// App holds one run's configuration, streams and metrics registry.
type App struct {
	cfg      config.Config
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	runID    string
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

// New returns an App for cfg. "-" paths in cfg resolve to the given streams.
// cfg is expected to be validated already.
func New(cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) (*App, error) {
	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		runID:    uuid.NewString(),
		registry: reg,
		metrics:  col,
	}, nil
}

// RunID identifies this run in logs.
func (a *App) RunID() string {
	return a.runID
}

// Registry returns the run's metrics registry. This is primarily for testing.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}
