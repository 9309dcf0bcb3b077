// Package term is the terminal front-end. It renders a session with termbox
// cells and feeds arrow keys into the simulation core; the core itself never
// sees a key code or an escape sequence.
package term

import (
	"time"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/toroidal/snake/config"
	"github.com/toroidal/snake/game"
)

// updatesPerSecond is the fixed simulation rate. The redraw rate is a
// separate knob (config.TermFrameHz) and never changes how fast the snake
// moves.
const updatesPerSecond = 8

// maxFrameHz caps the redraw rate. Past it the ticker interval truncates
// toward zero, and time.NewTicker panics on zero.
const maxFrameHz = 120

// Run owns the session until the player quits with q or escape. A frame
// ticker drives redraws while a rate limiter gates simulation ticks at the
// fixed update rate, so frames between ticks just repaint the committed
// state. Input, ticking and rendering all happen on this goroutine; the
// event queue goroutine only ferries termbox events.
func Run(state *game.State, fresh func() *game.State) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "term: init")
	}
	defer termbox.Close()

	events := eventQueue()
	frames := time.NewTicker(time.Second / time.Duration(frameRate(config.TermFrameHz)))
	defer frames.Stop()

	ticks := rate.NewLimiter(rate.Limit(updatesPerSecond), 1)

	if err := render(state); err != nil {
		return err
	}

	for {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch {
			case ev.Key == termbox.KeyEsc || ev.Ch == 'q':
				log.WithField("game", state.ID()).Info("player quit")
				return nil
			case ev.Ch == 'r' && state.Over():
				state = fresh()
			default:
				if d, ok := DirectionForKey(ev.Key); ok {
					state.Snake.Steer(d)
				}
			}
		case <-frames.C:
			if ticks.Allow() {
				state.Tick()
			}
			if err := render(state); err != nil {
				return err
			}
		}
	}
}

// frameRate clamps the configured redraw rate. Frames are the only moments
// ticks can fire, so anything below the simulation rate would slow the snake
// itself, not just the repaint.
func frameRate(fps int) int {
	if fps < updatesPerSecond {
		return updatesPerSecond
	}
	if fps > maxFrameHz {
		return maxFrameHz
	}
	return fps
}

// eventQueue ferries termbox events into a channel so the control loop can
// select over input and the frame ticker at once. The poll goroutine has no
// stop signal: it stays blocked in PollEvent after Run returns and is
// reclaimed at process exit.
func eventQueue() <-chan termbox.Event {
	events := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(events)
	return events
}
