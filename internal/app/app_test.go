package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

const squareGrid = "S-7\n|.|\nL-J\n"

func writeInput(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func testConfig(input string) config.Config {
	cfg := config.Default()
	cfg.Input = input
	return cfg
}

func TestRun_PrintsAnswers(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := testConfig(writeInput(t, squareGrid))
	cfg.LogLevel = "debug"

	require.NoError(t, NewApp(&out, &logs, cfg).Run(context.Background()))
	assert.Equal(t, "farthest point: 4\ninterior cells: 1\n", out.String())
	assert.Contains(t, logs.String(), "Grid parsed.")
	assert.Contains(t, logs.String(), "Farthest point confirmed by BFS.")
	assert.Contains(t, logs.String(), "interior=1")
}

func TestRun_Render(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := testConfig(writeInput(t, squareGrid))
	cfg.Render = true
	cfg.Color = false

	require.NoError(t, NewApp(&out, &logs, cfg).Run(context.Background()))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "│I│", lines[3])
}

func TestRun_JSONLogs(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := testConfig(writeInput(t, squareGrid))
	cfg.LogFormat = "json"

	require.NoError(t, NewApp(&out, &logs, cfg).Run(context.Background()))
	assert.Contains(t, logs.String(), `"msg":"Grid solved."`)
	assert.NotContains(t, logs.String(), "Grid parsed.", "debug lines hidden at info level")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"InvalidGlyph", "S-7\n|x|\nL-J", pipegrid.ErrInvalidTileGlyph},
		{"NoStart", "F7\nLJ", pipegrid.ErrStartNotFound},
		{"OffGrid", "S-\n|.", pipegrid.ErrOutOfBoundsWalk},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			err := NewApp(&out, &logs, testConfig(writeInput(t, tc.text))).Run(context.Background())
			require.ErrorIs(t, err, tc.err)
			assert.Empty(t, out.String())
		})
	}

	var out, logs bytes.Buffer
	err := NewApp(&out, &logs, testConfig(filepath.Join(t.TempDir(), "missing"))).Run(context.Background())
	require.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
