package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/toroidal/snake/grid"
)

var (
	backgroundColor = color.RGBA{0x14, 0x14, 0x1e, 0xff}
	headColor       = color.RGBA{0x64, 0xff, 0x96, 0xff}
	bodyColor       = color.RGBA{0x46, 0xc8, 0x78, 0xff}
	foodColor       = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

// Draw repaints the committed state: one filled square per occupied cell,
// the head in its own color. There is no interpolation between ticks.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i, p := range g.state.Snake.Body {
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		fillCell(screen, p, c)
	}
	fillCell(screen, g.state.Food, foodColor)

	if g.state.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER  press R to restart, ESC to quit",
			CellSize, CellSize)
	}
}

// fillCell paints one board cell as a CellSize square.
func fillCell(screen *ebiten.Image, p grid.Point, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(p.X*CellSize), float32(p.Y*CellSize),
		CellSize, CellSize, c, false)
}
