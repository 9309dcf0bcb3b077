package game

// Touch is what the snake's head landed on during a tick. Exactly one value
// is produced per tick.
type Touch string

const (
	// TouchNone means the head landed on an empty cell and the tail advanced.
	TouchNone Touch = "none"
	// TouchBody means the head landed on one of the snake's own segments and
	// the session is over.
	TouchBody Touch = "body"
	// TouchFood means the head landed on the food cell and the snake grew.
	TouchFood Touch = "food"
)
