package term

import (
	termbox "github.com/nsf/termbox-go"

	"github.com/toroidal/snake/grid"
)

// DirectionForKey maps the four arrow keys to board directions. Any other
// key maps to nothing; whether a mapped direction is honored is the steering
// policy's call, not the key mapping's.
func DirectionForKey(key termbox.Key) (grid.Direction, bool) {
	switch key {
	case termbox.KeyArrowUp:
		return grid.Up, true
	case termbox.KeyArrowDown:
		return grid.Down, true
	case termbox.KeyArrowLeft:
		return grid.Left, true
	case termbox.KeyArrowRight:
		return grid.Right, true
	}
	return 0, false
}
