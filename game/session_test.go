package game

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/toroidal/snake/grid"
)

// TestLongSessionHoldsInvariants drives a session with random steering for
// thousands of ticks and checks the properties that must hold on every one
// of them: every segment stays on the board, and the body grows by exactly
// one cell per food eaten and never otherwise.
func TestLongSessionHoldsInvariants(t *testing.T) {
	board := grid.Board{Width: 8, Height: 8}
	state := New(Config{Board: board, Seed: 99})
	steering := rand.New(rand.NewSource(7))

	foods := 0
	for i := 0; i < 5000 && !state.Over(); i++ {
		if steering.Intn(3) == 0 {
			state.Snake.Steer(grid.Directions[steering.Intn(len(grid.Directions))])
		}

		touched := state.Tick()
		if touched == TouchBody {
			break
		}
		if touched == TouchFood {
			foods++
		}

		for _, p := range state.Snake.Body {
			require.True(t, board.Contains(p), "segment off the board\n%s", spew.Sdump(state.Snake))
		}
		require.Equal(t, 2+foods, state.Snake.Len(), "length drifted\n%s", spew.Sdump(state.Snake))
	}

	if state.Over() {
		head := state.Snake.Head()
		length := state.Snake.Len()
		require.Equal(t, TouchNone, state.Tick())
		require.Equal(t, head, state.Snake.Head())
		require.Equal(t, length, state.Snake.Len())
	}
}

// TestScriptedLap steers the snake around a small rectangle and back onto
// its starting row, checking the committed position after every tick.
func TestScriptedLap(t *testing.T) {
	board := grid.Board{Width: 9, Height: 9}
	state := New(Config{Board: board, Seed: 5})
	state.Food = grid.Point{X: 0, Y: 0} // out of the lap's path

	waypoints := []struct {
		steer grid.Direction
		head  grid.Point
	}{
		{grid.Right, grid.Point{X: 5, Y: 4}},
		{grid.Down, grid.Point{X: 5, Y: 5}},
		{grid.Left, grid.Point{X: 4, Y: 5}},
		{grid.Up, grid.Point{X: 4, Y: 4}},
	}

	for _, w := range waypoints {
		state.Snake.Steer(w.steer)
		require.Equal(t, TouchNone, state.Tick())
		require.Equal(t, w.head, state.Snake.Head(), "after steering %s", w.steer)
	}

	require.False(t, state.Over())
	require.Equal(t, 2, state.Snake.Len())
}
