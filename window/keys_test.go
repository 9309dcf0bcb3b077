package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/toroidal/snake/game"
	"github.com/toroidal/snake/grid"
)

func TestDirectionForKeyMapsArrowsAndWASD(t *testing.T) {
	cases := []struct {
		keys []ebiten.Key
		dir  grid.Direction
	}{
		{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, grid.Up},
		{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, grid.Down},
		{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, grid.Left},
		{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, grid.Right},
	}

	for _, c := range cases {
		for _, key := range c.keys {
			d, ok := DirectionForKey(key)
			require.True(t, ok, "key %s", key)
			require.Equal(t, c.dir, d)
		}
	}
}

func TestDirectionForKeyIgnoresOtherKeys(t *testing.T) {
	for _, key := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyR, ebiten.KeyEscape} {
		_, ok := DirectionForKey(key)
		require.False(t, ok, "key %s", key)
	}
}

func TestLayoutIsTheBoardInPixels(t *testing.T) {
	state := game.New(game.Config{Board: grid.Default(), Seed: 1})
	g := NewGame(state, nil)

	w, h := g.Layout(123, 456)

	require.Equal(t, grid.DefaultWidth*CellSize, w)
	require.Equal(t, grid.DefaultHeight*CellSize, h)
}
