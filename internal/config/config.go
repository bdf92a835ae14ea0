package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the validated run configuration.
type Config struct {
	Input     string // path of the puzzle input file
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
	Render    bool   // draw the grid after the answers
	Color     bool   // colour the drawing
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Color:     true,
	}
}

// hclFile mirrors the accepted HCL file layout. Pointers mark attributes
// that were actually present.
type hclFile struct {
	Input     *string    `hcl:"input,optional"`
	LogLevel  *string    `hcl:"log_level,optional"`
	LogFormat *string    `hcl:"log_format,optional"`
	Render    *hclRender `hcl:"render,block"`
}

type hclRender struct {
	Enabled *bool `hcl:"enabled,optional"`
	Color   *bool `hcl:"color,optional"`
}

// LoadFile reads an HCL file and applies its values over base.
func LoadFile(path string, base Config) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(src, path, base)
}

// Decode parses HCL source and applies its values over base. filename is
// used only in diagnostics.
func Decode(src []byte, filename string, base Config) (Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return base, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	cfg := base
	setString(&cfg.Input, parsed.Input)
	setString(&cfg.LogLevel, parsed.LogLevel)
	setString(&cfg.LogFormat, parsed.LogFormat)
	if r := parsed.Render; r != nil {
		cfg.Render = true
		setBool(&cfg.Render, r.Enabled)
		setBool(&cfg.Color, r.Color)
	}

	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
