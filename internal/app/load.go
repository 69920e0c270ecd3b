package app

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/rngraph/geom"
	"github.com/katalvlaran/rngraph/internal/config"
	"github.com/katalvlaran/rngraph/internal/ctxlog"
	"github.com/katalvlaran/rngraph/pointio"
	"github.com/katalvlaran/rngraph/pointset"
)

// loadPoints generates the configured shape or reads the input file.
func (a *App) loadPoints(ctx context.Context) ([]geom.Point, error) {
	logger := ctxlog.FromContext(ctx)

	if a.cfg.Generate != "" {
		con, err := pointset.ByName(a.cfg.Generate, a.cfg.Count)
		if err != nil {
			return nil, err
		}
		pts, err := pointset.Build([]pointset.Option{
			pointset.WithSeed(a.cfg.Seed),
			pointset.WithScale(a.cfg.Scale),
		}, con)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s points: %w", a.cfg.Generate, err)
		}
		logger.Debug("Points generated.", "shape", a.cfg.Generate, "count", len(pts), "seed", a.cfg.Seed)
		return pts, nil
	}

	format, err := a.inputFormat()
	if err != nil {
		return nil, err
	}

	if a.cfg.Input == config.Stdio {
		logger.Debug("Reading points from stdin.", "format", format)
		return pointio.ReadPoints(a.stdin, format)
	}

	f, err := os.Open(a.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	logger.Debug("Reading points.", "path", a.cfg.Input, "format", format)
	pts, err := pointio.ReadPoints(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.Input, err)
	}
	return pts, nil
}

// inputFormat resolves the explicit override, then the file extension.
// Stdin without an override is read as CSV.
func (a *App) inputFormat() (pointio.Format, error) {
	if a.cfg.InputFormat != "" {
		return pointio.ParseFormat(a.cfg.InputFormat)
	}
	if a.cfg.Input == config.Stdio {
		return pointio.FormatCSV, nil
	}
	return pointio.FormatFromPath(a.cfg.Input)
}
