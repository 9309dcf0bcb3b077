package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveWrapsAtEveryEdge(t *testing.T) {
	b := Board{Width: 5, Height: 4}

	require.Equal(t, Point{X: 0, Y: 3}, b.Move(Point{X: 0, Y: 0}, Up))
	require.Equal(t, Point{X: 0, Y: 0}, b.Move(Point{X: 0, Y: 3}, Down))
	require.Equal(t, Point{X: 4, Y: 2}, b.Move(Point{X: 0, Y: 2}, Left))
	require.Equal(t, Point{X: 0, Y: 2}, b.Move(Point{X: 4, Y: 2}, Right))
}

func TestMoveStaysInRange(t *testing.T) {
	b := Board{Width: 3, Height: 7}

	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			for _, d := range Directions {
				p := b.Move(Point{X: x, Y: y}, d)
				require.True(t, b.Contains(p), "move %s from (%d,%d) left the board at %s", d, x, y, p)
			}
		}
	}
}

func TestMoveRoundTripsThroughInverse(t *testing.T) {
	b := Board{Width: 4, Height: 6}

	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			for _, d := range Directions {
				p := Point{X: x, Y: y}
				require.Equal(t, p, b.Move(b.Move(p, d), d.Inverse()))
			}
		}
	}
}

func TestWrapIsEuclidean(t *testing.T) {
	require.Equal(t, 39, wrap(-1, 40))
	require.Equal(t, 0, wrap(40, 40))
	require.Equal(t, 39, wrap(39, 40))
	require.Equal(t, 0, wrap(0, 40))
}

func TestRandomPointEventuallyCoversTheBoard(t *testing.T) {
	b := Board{Width: 3, Height: 3}
	rng := rand.New(rand.NewSource(1))

	seen := map[Point]bool{}
	for i := 0; i < 500; i++ {
		p := b.RandomPoint(rng)
		require.True(t, b.Contains(p))
		seen[p] = true
	}
	require.Len(t, seen, b.Width*b.Height)
}

func TestCenter(t *testing.T) {
	require.Equal(t, Point{X: 20, Y: 20}, Default().Center())
	require.Equal(t, Point{X: 2, Y: 2}, Board{Width: 5, Height: 5}.Center())
}
