package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/rngraph/geom"
	"github.com/katalvlaran/rngraph/internal/config"
	"github.com/katalvlaran/rngraph/internal/ctxlog"
	"github.com/katalvlaran/rngraph/metrics"
	"github.com/katalvlaran/rngraph/pointio"
	"github.com/katalvlaran/rngraph/rng"
)

// Run executes the job: load, validate, build, write, dump metrics.
func (a *App) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("run_id", a.runID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Run started.")

	pts, err := a.loadPoints(ctx)
	if err != nil {
		return err
	}
	if err := geom.Validate(pts); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	n := len(pts)
	if a.cfg.WarnPoints > 0 && n > a.cfg.WarnPoints {
		logger.Warn("Large input, build cost grows as n^3.", "points", n, "warn_points", a.cfg.WarnPoints)
	}

	g, err := rng.Build(pts, a.buildOptions()...)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	format, err := pointio.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return err
	}
	if err := a.writeTo(a.cfg.Output, a.stdout, func(w io.Writer) error {
		return pointio.WriteGraph(w, g, format)
	}); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}

	if a.cfg.MetricsOut != "" {
		if err := a.writeTo(a.cfg.MetricsOut, a.stderr, func(w io.Writer) error {
			return metrics.WriteText(w, a.registry)
		}); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	logger.Info("Graph built.", "points", n, "edges", g.EdgeCount(), "output", a.cfg.Output)
	return nil
}

func (a *App) buildOptions() []rng.Option {
	opts := []rng.Option{
		rng.WithMaxPoints(a.cfg.MaxPoints),
		rng.WithObserver(a.metrics),
	}
	if a.cfg.Workers > 0 {
		opts = append(opts, rng.WithWorkers(a.cfg.Workers))
	}
	if a.cfg.NoCache {
		opts = append(opts, rng.WithoutDistanceCache())
	}
	return opts
}

// writeTo runs write against path, or against std when path is "-".
func (a *App) writeTo(path string, std io.Writer, write func(io.Writer) error) error {
	if path == config.Stdio {
		return write(std)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
