// Package window is the windowed front-end. The same session the terminal
// front-end drives is rendered here as colored squares by Ebitengine, whose
// fixed-rate Update callback doubles as the tick driver: one Update call is
// one simulation tick, while Draw follows the display refresh and repaints
// the committed state in between.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/toroidal/snake/game"
)

const (
	// CellSize is the pixel size of one board cell.
	CellSize = 32
	// updatesPerSecond is the fixed simulation rate Ebitengine calls Update
	// at, independent of the display's refresh rate.
	updatesPerSecond = 8

	windowTitle = "Snake"
)

// Game adapts a session to Ebitengine's run loop. Update and Draw are never
// called concurrently, so the session needs no locking.
type Game struct {
	state *game.State
	fresh func() *game.State
}

// NewGame wraps a session for the run loop. fresh builds the replacement
// session when the player restarts.
func NewGame(state *game.State, fresh func() *game.State) *Game {
	return &Game{state: state, fresh: fresh}
}

// Update applies this frame's key presses to the steering policy and then
// advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.WithField("game", g.state.ID()).Info("player quit")
		return ebiten.Termination
	}
	if g.state.Over() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state = g.fresh()
	}

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if d, ok := DirectionForKey(key); ok {
			g.state.Snake.Steer(d)
		}
	}

	g.state.Tick()
	return nil
}

// Layout fixes the logical screen to the board's pixel size regardless of
// how the window is scaled.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.state.Board.Width * CellSize, g.state.Board.Height * CellSize
}

// Run opens the window and blocks until the player quits or closes it.
func Run(state *game.State, fresh func() *game.State) error {
	ebiten.SetWindowSize(state.Board.Width*CellSize, state.Board.Height*CellSize)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(updatesPerSecond)

	if err := ebiten.RunGame(NewGame(state, fresh)); err != nil {
		return errors.Wrap(err, "window: run")
	}
	return nil
}
