package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rngraph/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rngraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate: lattice\ncount: 27\nworkers: 2\nlog_level: debug\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lattice", cfg.Generate)
	assert.Equal(t, 27, cfg.Count)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "json", cfg.OutputFormat, "unset keys keep defaults")
	require.NoError(t, cfg.Validate())

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wokers: 2\n"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err, "unknown keys are rejected")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"NoOutput", func(c *config.Config) { c.Output = "" }},
		{"NoInput", func(c *config.Config) { c.Input = "" }},
		{"OutputFormat", func(c *config.Config) { c.OutputFormat = "xml" }},
		{"InputFormat", func(c *config.Config) { c.InputFormat = "bin" }},
		{"Shape", func(c *config.Config) { c.Generate = "torus" }},
		{"Count", func(c *config.Config) { c.Generate = "line"; c.Count = -1 }},
		{"Scale", func(c *config.Config) { c.Generate = "line"; c.Scale = 0 }},
		{"Workers", func(c *config.Config) { c.Workers = -1 }},
		{"MaxPoints", func(c *config.Config) { c.MaxPoints = -1 }},
		{"LogLevel", func(c *config.Config) { c.LogLevel = "trace" }},
		{"LogFormat", func(c *config.Config) { c.LogFormat = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := config.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
