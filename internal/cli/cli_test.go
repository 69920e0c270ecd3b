package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rngraph/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestParse_FlagsAndPositional(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := cli.Parse([]string{"-o", "g.yaml", "-output-format", "yaml", "-workers", "3", "points.csv"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "points.csv", cfg.Input)
	assert.Equal(t, "g.yaml", cfg.Output)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Workers)
}

func TestParse_ConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate: uniform\ncount: 50\nseed: 9\n"), 0o600))

	var out bytes.Buffer
	cfg, _, err := cli.Parse([]string{"-config", path, "-n", "10"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "uniform", cfg.Generate)
	assert.Equal(t, 10, cfg.Count, "explicit flag wins over file")
	assert.Equal(t, int64(9), cfg.Seed, "file wins over default")
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "relative neighborhood graph")
}

func TestParse_Errors(t *testing.T) {
	cases := [][]string{
		{"-bogus"},
		{"-log-level", "loud"},
		{"-generate", "torus"},
		{"a.csv", "b.csv"},
		{"-config", "/nonexistent/rngraph.yaml"},
	}
	for _, args := range cases {
		var out bytes.Buffer
		_, _, err := cli.Parse(args, &out)
		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr, "%v", args)
		assert.Equal(t, cli.CodeUsage, exitErr.Code)
	}
}
