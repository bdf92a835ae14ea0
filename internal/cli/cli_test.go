package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"grid.txt"}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	want := config.Default()
	want.Input = "grid.txt"
	assert.Equal(t, &want, cfg)
}

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-i", "a.txt", "-log-level", "DEBUG", "-log-format", "json", "-render", "-color=false"}, &out)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Input:     "a.txt",
		LogLevel:  "debug",
		LogFormat: "json",
		Render:    true,
		Color:     false,
	}, cfg)
}

func TestParse_ConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	src := `
input     = "from-file.txt"
log_level = "warn"
render {
  color = false
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-config", path}, &out)
	require.NoError(t, err)
	assert.Equal(t, "from-file.txt", cfg.Input)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Render)
	assert.False(t, cfg.Color)

	cfg, _, err = Parse([]string{"-c", path, "-log-level", "error", "other.txt"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "other.txt", cfg.Input)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.Color, "unset -color must not override the file")
}

func TestParse_Exits(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	_, exit, err = Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag": {"-workers", "3", "in.txt"},
		"bad level":    {"-log-level", "trace", "in.txt"},
		"bad format":   {"-log-format", "xml", "in.txt"},
		"missing conf": {"-config", filepath.Join(t.TempDir(), "nope.hcl"), "in.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(args, &out)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
