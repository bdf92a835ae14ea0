// Package config holds the run configuration of the pipeloop CLI.
//
// Values come from three layers, later ones winning: Default(), an optional
// HCL file (LoadFile or Decode), and explicitly set command-line flags.
//
// Example file:
//
//	input      = "input/day10-input"
//	log_level  = "debug"
//	log_format = "text"
//
//	render {
//	  enabled = true
//	  color   = false
//	}
package config
