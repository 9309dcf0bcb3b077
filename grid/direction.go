package grid

// Direction is one of the four cardinal movement directions.
type Direction int

// The four directions a snake can travel.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid direction, for iteration in tests and input
// mapping tables.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the single-cell step for d in screen coordinates, where Y
// grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Inverse returns the opposite direction. It is its own inverse: applying it
// twice gives back d.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
