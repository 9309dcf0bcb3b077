package game

import (
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/toroidal/snake/grid"
)

// Session status values.
const (
	// StatusRunning represents a session that is still accepting ticks.
	StatusRunning = "running"
	// StatusOver represents a session ended by a self-collision.
	StatusOver = "over"
)

// Config carries everything needed to start a session. The seed is consumed
// once at construction and the session never reseeds.
type Config struct {
	Board grid.Board
	Seed  int64
}

// State is one game session: the snake, the food cell, the generator that
// places food and the over flag. A State is owned by a single goroutine; the
// front-end packages document how they guarantee that.
type State struct {
	Board grid.Board
	Snake *Snake
	Food  grid.Point

	rng   *rand.Rand
	over  bool
	id    string
	ticks uint64
}

// New starts a session on cfg.Board with the snake at the center and the
// first food cell drawn from a generator seeded with cfg.Seed.
func New(cfg Config) *State {
	rng := rand.New(rand.NewSource(cfg.Seed))
	state := &State{
		Board: cfg.Board,
		Snake: NewSnake(cfg.Board, cfg.Board.Center()),
		rng:   rng,
		id:    uuid.NewString(),
	}
	// Food placement is a bare uniform draw. It may land on the body; the
	// snake simply passes over it and eats.
	state.Food = cfg.Board.RandomPoint(rng)

	log.WithFields(log.Fields{
		"game":  state.id,
		"board": state.Board,
		"seed":  cfg.Seed,
	}).Info("session started")

	return state
}

// ID returns the session's unique identifier, used to correlate log lines.
func (s *State) ID() string {
	return s.id
}

// Over reports whether the session has ended.
func (s *State) Over() bool {
	return s.over
}

// Status returns StatusRunning or StatusOver.
func (s *State) Status() string {
	if s.over {
		return StatusOver
	}
	return StatusRunning
}

// Ticks returns how many ticks have advanced the session so far. Skipped
// ticks after the session is over are not counted.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// Tick advances the session by one simulation step and reports what the head
// touched. Once the session is over, ticks are skipped entirely: the snake
// does not move and no collision evaluation runs.
func (s *State) Tick() Touch {
	if s.over {
		return TouchNone
	}
	s.ticks++

	touched := s.Snake.Advance(s.Board, s.Food)
	switch touched {
	case TouchBody:
		s.over = true
		log.WithFields(log.Fields{
			"game":   s.id,
			"tick":   s.ticks,
			"length": s.Snake.Len(),
		}).Info("game over")
	case TouchFood:
		s.Food = s.Board.RandomPoint(s.rng)
		log.WithFields(log.Fields{
			"game":   s.id,
			"tick":   s.ticks,
			"length": s.Snake.Len(),
			"food":   s.Food,
		}).Info("food eaten")
	default:
		log.WithFields(log.Fields{
			"game": s.id,
			"tick": s.ticks,
			"head": s.Snake.Head(),
		}).Debug("tick")
	}
	return touched
}
