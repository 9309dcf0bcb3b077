package term

import (
	"fmt"

	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/toroidal/snake/game"
	"github.com/toroidal/snake/grid"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	headColor    = termbox.ColorCyan
	bodyColor    = termbox.ColorGreen
	foodColor    = termbox.ColorBlue
)

// render repaints the whole frame: title, border, snake, food and the status
// line, centered in the terminal.
func render(state *game.State) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	var (
		w, h = termbox.Size()
		left = (w - state.Board.Width) / 2
		top  = (h-state.Board.Height)/2 - 1
	)

	renderTitle(left, top)
	renderBorder(state.Board, left, top)
	renderSnake(state.Snake, left, top)
	renderFood(state.Food, left, top)
	renderStatus(state, left, top)

	return termbox.Flush()
}

// screenPos maps a board point to its terminal cell inside the border.
func screenPos(p grid.Point, left, top int) (x, y int) {
	return left + p.X, top + 1 + p.Y
}

func renderTitle(left, top int) {
	tbprint(left, top-1, defaultColor, defaultColor, "Snake")
}

func renderBorder(b grid.Board, left, top int) {
	bottom := top + b.Height + 1

	for y := top + 1; y < bottom; y++ {
		termbox.SetCell(left-1, y, '│', defaultColor, bgColor)
		termbox.SetCell(left+b.Width, y, '│', defaultColor, bgColor)
	}
	fill(left, top, b.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, b.Width, 1, termbox.Cell{Ch: '─'})

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+b.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+b.Width, bottom, '┘', defaultColor, bgColor)
}

func renderSnake(s *game.Snake, left, top int) {
	for i, p := range s.Body {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		x, y := screenPos(p, left, top)
		termbox.SetCell(x, y, ' ', color, color)
	}
}

func renderFood(p grid.Point, left, top int) {
	x, y := screenPos(p, left, top)
	termbox.SetCell(x, y, '●', foodColor, bgColor)
}

func renderStatus(state *game.State, left, top int) {
	status := fmt.Sprintf("length %d", state.Snake.Len())
	if state.Over() {
		status = fmt.Sprintf("game over, length %d. r restarts, q quits", state.Snake.Len())
	}
	tbprint(left, top+state.Board.Height+2, defaultColor, defaultColor, status)
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}
