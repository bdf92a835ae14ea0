// Package cli turns command-line arguments into a validated config.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pipeloop/internal/config"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the merged config, a
// boolean reporting whether the program should exit cleanly (help or no
// input), or an *ExitError with code 2 for usage problems.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pipeloop", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pipeloop - walks the pipe loop of a grid and counts the cells it encloses.

Usage:
  pipeloop [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to the puzzle input: rows of the glyphs | - L J 7 F . S

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the puzzle input file.")
	iFlag := flagSet.String("i", "", "Path to the puzzle input file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	cFlag := flagSet.String("c", "", "Path to an HCL config file (shorthand).")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	renderFlag := flagSet.Bool("render", false, "Draw the grid with the loop and interior highlighted.")
	colorFlag := flagSet.Bool("color", true, "Use ANSI colours when rendering.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := config.Default()
	if path := firstNonEmpty(*configFlag, *cFlag); path != "" {
		loaded, err := config.LoadFile(path, cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Config file loaded.", "path", path)
	}

	// Only flags given explicitly override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "render":
			cfg.Render = *renderFlag
		case "color":
			cfg.Color = *colorFlag
		}
	})
	if path := firstNonEmpty(*inputFlag, *iFlag, flagSet.Arg(0)); path != "" {
		cfg.Input = path
	}
	slog.Debug("Input path determined.", "path", cfg.Input)

	if cfg.Input == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
