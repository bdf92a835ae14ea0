package pipegrid_test

// Puzzle grids shared by the tests in this package.
const (
	// simpleLoop is a 5×5 grid whose 16-step loop snakes around one ground cell.
	simpleLoop = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`

	// noisySquare surrounds a 4-step square loop with dead pipes.
	noisySquare = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF`

	// doubleWalled has a loop that pinches into two interior pockets.
	doubleWalled = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........`

	// interlocking is a 20×10 grid with several enclosed pockets.
	interlocking = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`

	// junkFilled puts Start on the top row of a grid full of dead pipes.
	junkFilled = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`
)
