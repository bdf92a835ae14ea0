// Package app wires configuration, logging and the pipegrid engine into a
// single run: read the input file, solve it, print the answers.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/ctxlog"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/render"
)

// App holds the dependencies of one run.
type App struct {
	outW     io.Writer
	cfg      config.Config
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
}

// NewApp builds an App writing answers to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg config.Config) *App {
	return &App{
		outW:     outW,
		cfg:      cfg,
		logger:   newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		readFile: os.ReadFile,
	}
}

// Run solves the configured input and prints the farthest-point distance and
// the interior cell count, followed by the drawing when rendering is on.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	src, err := a.readFile(a.cfg.Input)
	if err != nil {
		return fmt.Errorf("app: read input: %w", err)
	}
	g, err := pipegrid.Parse(string(src))
	if err != nil {
		return fmt.Errorf("app: parse %s: %w", a.cfg.Input, err)
	}
	logger.Debug("Grid parsed.", "width", g.Width, "height", g.Height)

	loop, err := pipegrid.Walk(g)
	if err != nil {
		return fmt.Errorf("app: walk %s: %w", a.cfg.Input, err)
	}
	logger.Debug("Loop walked.", "start", loop.Start.String(), "steps", loop.Steps)

	if err := a.crossCheck(ctx, g, loop); err != nil {
		return err
	}

	interior := pipegrid.CountInterior(g, loop)
	logger.Info("Grid solved.", "input", a.cfg.Input, "farthest", loop.Farthest(), "interior", interior)

	if _, err := fmt.Fprintf(a.outW, "farthest point: %d\ninterior cells: %d\n", loop.Farthest(), interior); err != nil {
		return err
	}
	if !a.cfg.Render {
		return nil
	}
	opts := render.DefaultOptions()
	opts.Color = a.cfg.Color
	return render.Grid(a.outW, g, loop, opts)
}

// crossCheck compares the walked farthest point with a BFS over the pipe
// network and warns on disagreement.
func (a *App) crossCheck(ctx context.Context, g *pipegrid.Grid, loop *pipegrid.Loop) error {
	logger := ctxlog.FromContext(ctx)
	far, err := pipegrid.FarthestByBFS(ctx, g)
	if err != nil {
		return fmt.Errorf("app: cross-check: %w", err)
	}
	if far != loop.Farthest() {
		logger.Warn("Farthest point disagrees with BFS.", "walk", loop.Farthest(), "bfs", far)
		return nil
	}
	logger.Debug("Farthest point confirmed by BFS.", "farthest", far)
	return nil
}
