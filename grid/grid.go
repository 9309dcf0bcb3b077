// Package grid defines the toroidal coordinate space the game is played on.
// The board has no walls: every move off an edge re-enters on the opposite
// edge, so movement is total and never fails.
package grid

import (
	"fmt"
	"math/rand"
)

// Default board dimensions, in cells.
const (
	DefaultWidth  = 40
	DefaultHeight = 40
)

// Point is one cell on the board. X grows to the right, Y grows downward.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Board is a finite toroidal grid. Both dimensions must be positive.
type Board struct {
	Width  int
	Height int
}

// Default returns the standard 40x40 board.
func Default() Board {
	return Board{Width: DefaultWidth, Height: DefaultHeight}
}

func (b Board) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Contains reports whether p lies inside the board's canonical range.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Center returns the cell at the middle of the board.
func (b Board) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// Move returns the cell one step from p in direction d, wrapping around the
// board edges. The result is always in range for any in-range p.
func (b Board) Move(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: wrap(p.X+dx, b.Width), Y: wrap(p.Y+dy, b.Height)}
}

// RandomPoint draws a uniformly distributed cell from the given generator.
func (b Board) RandomPoint(rng *rand.Rand) Point {
	return Point{X: rng.Intn(b.Width), Y: rng.Intn(b.Height)}
}

// wrap maps v into [0, m) with Euclidean modulo, so -1 wraps to m-1 rather
// than staying negative.
func wrap(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
