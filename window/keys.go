package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/toroidal/snake/grid"
)

// DirectionForKey maps the arrow keys and WASD to board directions. Any
// other key maps to nothing.
func DirectionForKey(key ebiten.Key) (grid.Direction, bool) {
	switch key {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return grid.Up, true
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return grid.Down, true
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return grid.Left, true
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return grid.Right, true
	}
	return 0, false
}
