package game

import "github.com/toroidal/snake/grid"

// Advance runs one simulation step against the given board and food cell and
// reports what the new head landed on. The caller decides what the outcome
// means: relocating food, ending the session. The order is fixed: commit a
// pending turn, move, evaluate the head's cell, then trim the tail unless
// the snake ate or died.
func (s *Snake) Advance(b grid.Board, food grid.Point) Touch {
	// A queued turn lands only once the current direction has been applied
	// for one full tick.
	if s.lastDirection == s.direction && s.pending != nil {
		s.direction = *s.pending
		s.pending = nil
	}

	head := b.Move(s.Head(), s.direction)
	s.Body = append([]grid.Point{head}, s.Body...)

	touched := TouchNone
	for _, p := range s.Body[1:] {
		if p == head {
			touched = TouchBody
			break
		}
	}
	if touched == TouchNone && head == food {
		touched = TouchFood
	}

	// On an empty cell the tail advances; on food it stays put and the snake
	// grows by one. Once the head hits the body the tail no longer matters.
	if touched == TouchNone {
		s.Body = s.Body[:len(s.Body)-1]
	}

	s.lastDirection = s.direction
	s.touched = touched
	return touched
}
