// Package cli parses rngraph command-line arguments into a validated
// config.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/rngraph/internal/config"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	CodeRuntime = 1
	CodeUsage   = 2
)

// Parse processes command-line arguments. It returns the resolved config,
// whether the program should exit cleanly (help), or an *ExitError.
//
// Precedence: defaults < -config file < explicitly set flags < positional INPUT.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	fs := flag.NewFlagSet("rngraph", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
rngraph - relative neighborhood graph of a 3D point set.

Usage:
  rngraph [options] [INPUT]

Arguments:
  INPUT
    Point file (.csv, .json, .yaml). "-" or empty reads stdin.

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	configPath := fs.String("config", "", "Path to a YAML config file.")
	input := fs.String("input", def.Input, "Point file; '-' reads stdin.")
	fs.StringVar(input, "i", def.Input, "Point file (shorthand).")
	inputFormat := fs.String("format", def.InputFormat, "Input format override: csv, json or yaml.")
	outputPath := fs.String("output", def.Output, "Graph output file; '-' writes stdout.")
	fs.StringVar(outputPath, "o", def.Output, "Graph output file (shorthand).")
	outputFormat := fs.String("output-format", def.OutputFormat, "Output format: csv, json or yaml.")
	generate := fs.String("generate", def.Generate, "Generate points instead of reading: line, lattice, uniform or sphere.")
	count := fs.Int("n", def.Count, "Number of generated points.")
	seed := fs.Int64("seed", def.Seed, "Seed for uniform/sphere generation.")
	scale := fs.Float64("scale", def.Scale, "Spacing, cube edge or radius of generated points.")
	workers := fs.Int("workers", def.Workers, "Build goroutines; 0 means GOMAXPROCS.")
	maxPoints := fs.Int("max-points", def.MaxPoints, "Reject inputs larger than this; 0 disables.")
	warnPoints := fs.Int("warn-points", def.WarnPoints, "Warn about O(n^3) cost above this size; 0 disables.")
	noCache := fs.Bool("no-cache", def.NoCache, "Compute distances on demand instead of caching them.")
	metricsOut := fs.String("metrics-out", def.MetricsOut, "Write Prometheus metrics here after the run; '-' is stderr.")
	logLevel := fs.String("log-level", def.LogLevel, "Logging level: debug, info, warn or error.")
	logFormat := fs.String("log-format", def.LogFormat, "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	// Only flags the user actually set override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input", "i":
			cfg.Input = *input
		case "format":
			cfg.InputFormat = *inputFormat
		case "output", "o":
			cfg.Output = *outputPath
		case "output-format":
			cfg.OutputFormat = *outputFormat
		case "generate":
			cfg.Generate = *generate
		case "n":
			cfg.Count = *count
		case "seed":
			cfg.Seed = *seed
		case "scale":
			cfg.Scale = *scale
		case "workers":
			cfg.Workers = *workers
		case "max-points":
			cfg.MaxPoints = *maxPoints
		case "warn-points":
			cfg.WarnPoints = *warnPoints
		case "no-cache":
			cfg.NoCache = *noCache
		case "metrics-out":
			cfg.MetricsOut = *metricsOut
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: CodeUsage, Message: "at most one INPUT argument is allowed"}
	}
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: CodeUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
