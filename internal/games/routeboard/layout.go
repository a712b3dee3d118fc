package routeboard

import (
	platformcore "github.com/vovakirdan/routeboard/internal/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
)

const (
	cellWidth  = 4 // Columns per tile including the left border
	cellHeight = 2 // Rows per tile including the top border

	boardW = core.W*cellWidth + 1
	boardH = core.H*cellHeight + 1

	hudHeight  = 3
	helpHeight = 2

	minScreenW = boardW
	minScreenH = hudHeight + boardH + helpHeight
)

// Layout places the board on the screen and maps pointer positions back to
// tiles. It is recomputed whenever the screen size changes.
type Layout struct {
	Screen platformcore.Rect
	Board  platformcore.Rect
	HUDY   int
	HelpY  int
}

// NewLayout centers the board horizontally under the HUD.
func NewLayout(screenW, screenH int) Layout {
	screen := platformcore.NewRect(0, 0, screenW, screenH)
	body := platformcore.NewRect(0, hudHeight, screenW, platformcore.Max(0, screenH-hudHeight-helpHeight))
	board := body.Centered(boardW, boardH)
	board.Y = hudHeight
	return Layout{
		Screen: screen,
		Board:  board,
		HUDY:   0,
		HelpY:  board.Bottom(),
	}
}

// Fits reports whether the full board and HUD fit on the screen.
func (l Layout) Fits() bool {
	return l.Screen.W >= minScreenW && l.Screen.H >= minScreenH
}

// Resolve maps a screen position to the tile under it.
// Border characters belong to the tile to their right and below.
func (l Layout) Resolve(px, py int) (core.Coord, bool) {
	if !l.Board.Contains(px, py) {
		return core.Coord{}, false
	}
	x := (px - l.Board.X) / cellWidth
	y := (py - l.Board.Y) / cellHeight
	c := core.C(x, y)
	return c, c.InBounds()
}

// CellOrigin returns the screen position of a tile's top-left border corner.
func (l Layout) CellOrigin(c core.Coord) (int, int) {
	return l.Board.X + c.X*cellWidth, l.Board.Y + c.Y*cellHeight
}
