// Package config holds the rngraph CLI configuration: deterministic
// defaults, an optional strict YAML file, and validation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rngraph/pointio"
	"github.com/katalvlaran/rngraph/pointset"
)

// ErrInvalid indicates a configuration value outside its allowed domain.
var ErrInvalid = errors.New("config: invalid value")

// Stdio is the path meaning stdin (for Input) or stdout (for Output).
const Stdio = "-"

// Config is the full CLI configuration.
type Config struct {
	// Input is the point file; "-" reads stdin. Ignored when Generate is set.
	Input string `yaml:"input"`
	// InputFormat overrides the format inferred from Input's extension.
	InputFormat string `yaml:"input_format"`
	// Output is the graph file; "-" writes stdout.
	Output string `yaml:"output"`
	// OutputFormat is csv, json or yaml.
	OutputFormat string `yaml:"output_format"`

	// Generate replaces Input with a synthetic cloud: line, lattice, uniform or sphere.
	Generate string `yaml:"generate"`
	// Count is the number of generated points.
	Count int `yaml:"count"`
	// Seed drives uniform/sphere generation.
	Seed int64 `yaml:"seed"`
	// Scale is the generated spacing, cube edge or radius.
	Scale float64 `yaml:"scale"`

	// Workers bounds build concurrency; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// MaxPoints rejects larger inputs; 0 means no limit.
	MaxPoints int `yaml:"max_points"`
	// WarnPoints logs a cost warning above this size; 0 disables the warning.
	WarnPoints int `yaml:"warn_points"`
	// NoCache disables the pairwise distance table.
	NoCache bool `yaml:"no_cache"`

	// MetricsOut, when set, receives the Prometheus text dump; "-" is stderr.
	MetricsOut string `yaml:"metrics_out"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Default returns a working configuration.
func Default() Config {
	return Config{
		Input:        Stdio,
		InputFormat:  "",
		Output:       Stdio,
		OutputFormat: string(pointio.FormatJSON),
		Count:        100,
		Seed:         1,
		Scale:        pointset.DefaultScale,
		Workers:      0,
		MaxPoints:    0,
		WarnPoints:   2000,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads the YAML file at path over Default(). Unknown keys are an
// error. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field's domain and returns an error wrapping
// ErrInvalid for the first violation.
func (c Config) Validate() error {
	if c.Generate == "" && c.Input == "" {
		return fmt.Errorf("input is required unless generate is set: %w", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("output is required: %w", ErrInvalid)
	}
	if _, err := pointio.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %v: %w", err, ErrInvalid)
	}
	if c.InputFormat != "" {
		if _, err := pointio.ParseFormat(c.InputFormat); err != nil {
			return fmt.Errorf("input_format: %v: %w", err, ErrInvalid)
		}
	}
	if c.Generate != "" {
		switch c.Generate {
		case pointset.ShapeLine, pointset.ShapeLattice, pointset.ShapeUniform, pointset.ShapeSphere:
		default:
			return fmt.Errorf("generate %q: %w", c.Generate, ErrInvalid)
		}
		if c.Count < 0 {
			return fmt.Errorf("count=%d must be ≥ 0: %w", c.Count, ErrInvalid)
		}
		if !(c.Scale > 0) || math.IsInf(c.Scale, 1) {
			return fmt.Errorf("scale=%g must be > 0: %w", c.Scale, ErrInvalid)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d must be ≥ 0: %w", c.Workers, ErrInvalid)
	}
	if c.MaxPoints < 0 || c.WarnPoints < 0 {
		return fmt.Errorf("max_points/warn_points must be ≥ 0: %w", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q must be 'text' or 'json': %w", c.LogFormat, ErrInvalid)
	}

	return nil
}

// ParseLevel maps debug/info/warn/error to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level %q must be debug, info, warn or error: %w", s, ErrInvalid)
	}
}
