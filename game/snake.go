// Package game implements the snake simulation: a deterministic core that is
// advanced one tick at a time and knows nothing about rendering, windows or
// key codes. Front-ends translate their input events into Steer calls and
// drive Tick at a fixed rate.
package game

import "github.com/toroidal/snake/grid"

// Snake is the player-controlled entity. Body holds every occupied cell in
// head-to-tail order; the head is Body[0] and is never tracked separately.
// Body is never empty.
type Snake struct {
	Body []grid.Point

	// direction is applied on the next tick. lastDirection is what the
	// previous tick actually applied; the two differ while a turn is in
	// flight. pending holds at most one queued turn.
	direction     grid.Direction
	lastDirection grid.Direction
	pending       *grid.Direction
	touched       Touch
}

// NewSnake returns a snake of the starting length: the given head plus one
// segment directly to its left on the torus, travelling right.
func NewSnake(b grid.Board, head grid.Point) *Snake {
	return &Snake{
		Body:          []grid.Point{head, b.Move(head, grid.Left)},
		direction:     grid.Right,
		lastDirection: grid.Right,
		touched:       TouchNone,
	}
}

// Head returns the first point in the body.
func (s *Snake) Head() grid.Point {
	return s.Body[0]
}

// Len returns the number of cells the snake occupies, the head included.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Direction returns the direction the next tick will move in, unless a
// pending turn is committed first.
func (s *Snake) Direction() grid.Direction {
	return s.direction
}

// Touched returns the outcome of the most recent tick.
func (s *Snake) Touched() Touch {
	return s.touched
}

// Steer requests a turn. Reversals onto the snake's own neck are dropped
// outright, whether the snake is travelling straight or mid-turn. While an
// earlier turn has not yet been held for a full tick the request is parked
// in the pending slot instead, where a later request overwrites it; Advance
// commits the slot once the current direction has been applied for one whole
// tick. A direct turn empties the slot: a queued turn was validated against
// the direction it was queued behind, so letting it outlive a direction
// change could commit it as a reversal.
func (s *Snake) Steer(d grid.Direction) {
	if d == s.direction.Inverse() {
		return
	}
	if s.direction != s.lastDirection {
		s.pending = &d
		return
	}
	s.direction = d
	s.pending = nil
}
