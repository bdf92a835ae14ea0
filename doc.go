// Package pipeloop solves the pipe-maze grid puzzle: find the closed pipe
// loop through the Start tile, measure how far its far side is, and count
// the cells it encloses.
//
// Packages:
//
//	pipegrid/: Direction, Tile, Grid, Parse, loop walking, winding-number classification
//	core/    : small thread-safe graph used as the pipe network's adjacency structure
//	bfs/     : breadth-first search over core.Graph
//	render/  : ANSI text drawing of a solved grid
//	cmd/pipeloop: CLI: pipeloop [options] INPUT_PATH
//
// Quick ASCII example:
//
//	S-7
//	|.|
//	L-J
//
// has an 8-step loop, a farthest point 4 steps from S and one enclosed cell.
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
