package routeboard

import (
	"fmt"

	platformcore "github.com/vovakirdan/routeboard/internal/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
)

var arrows = map[core.Dir]rune{
	core.DirUp:    '↑',
	core.DirRight: '→',
	core.DirDown:  '↓',
	core.DirLeft:  '←',
}

// Render draws the HUD, the board and the help line.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	if !g.layout.Fits() {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderTiles(dst)
	g.renderFooter(dst)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorWarning)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), platformcore.ColorDim)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	b := g.layout.Board
	s := g.state

	dst.DrawTextColor(b.X, g.layout.HUDY, g.Title(), platformcore.ColorHUD)
	mode := "Mode: " + s.Mode().String()
	dst.DrawTextColor(b.Right()-len(mode), g.layout.HUDY, mode, platformcore.ColorHUD)

	counters := fmt.Sprintf("T:%d  E:%d  S:%d  P:%d", s.Turns(), s.Eaten(), s.Score(), s.PiecesRemaining())
	dst.DrawTextColor(b.X, g.layout.HUDY+1, counters, platformcore.ColorHUD)
	run := "PAUSE"
	if s.Running() {
		run = "RUN"
	}
	dst.DrawTextColor(b.Right()-len(run), g.layout.HUDY+1, run, platformcore.ColorHUD)

	ox, _ := g.layout.CellOrigin(core.Output)
	dst.SetCell(ox+cellWidth/2, g.layout.HUDY+2, '▼', platformcore.ColorOutput)
}

// renderGrid draws the tile borders, tinting them while the warning is armed.
func (g *Game) renderGrid(dst *platformcore.Screen) {
	color := platformcore.ColorGrid
	if g.state.FlashIntensity() > 0.5 {
		color = platformcore.ColorWarning
	}
	bx, by := g.layout.Board.X, g.layout.Board.Y

	for y := range core.H + 1 {
		for x := range core.W + 1 {
			px := bx + x*cellWidth
			py := by + y*cellHeight
			dst.SetCell(px, py, junction(x, y), color)

			if x < core.W {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', color)
				}
			}
			if y < core.H {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', color)
				}
			}
		}
	}

	// Output tile outline
	ox, oy := g.layout.CellOrigin(core.Output)
	dst.Tint(platformcore.NewRect(ox, oy, cellWidth+1, 1), platformcore.ColorOutput)
	dst.Tint(platformcore.NewRect(ox, oy+cellHeight, cellWidth+1, 1), platformcore.ColorOutput)
	dst.Tint(platformcore.NewRect(ox, oy+1, 1, cellHeight-1), platformcore.ColorOutput)
	dst.Tint(platformcore.NewRect(ox+cellWidth, oy+1, 1, cellHeight-1), platformcore.ColorOutput)
}

func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == core.W:
		return '┐'
	case y == core.H && x == 0:
		return '└'
	case y == core.H && x == core.W:
		return '┘'
	case y == 0:
		return '┬'
	case y == core.H:
		return '┴'
	case x == 0:
		return '├'
	case x == core.W:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderTiles(dst *platformcore.Screen) {
	board := g.state.Board()
	fail := g.state.LastFailure()
	flashing := g.state.Flash() > 0

	for y := range core.H {
		for x := range core.W {
			c := core.C(x, y)
			ox, oy := g.layout.CellOrigin(c)
			cx, cy := ox+1, oy+1

			arrow, ok := arrows[board.Direction(c)]
			if !ok {
				arrow = '·'
			}

			switch {
			case board.Occupied(c):
				color := platformcore.ColorPiece
				if board.Collided(c) {
					color = platformcore.ColorCollided
				}
				dst.SetCell(cx, cy, '(', color)
				dst.SetCell(cx+1, cy, arrow, color)
				dst.SetCell(cx+2, cy, ')', color)
			case c == core.Output:
				dst.SetCell(cx+1, cy, arrow, platformcore.ColorOutput)
			case ok:
				dst.SetCell(cx+1, cy, arrow, platformcore.ColorRoute)
			default:
				dst.SetCell(cx+1, cy, arrow, platformcore.ColorDim)
			}

			if flashing && fail.Reason != core.FailNone && fail.FailedAt == c {
				dst.Tint(platformcore.NewRect(cx, cy, cellWidth-1, 1), platformcore.ColorWarning)
			}
		}
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	b := g.layout.Board
	dst.DrawTextColor(b.X, g.layout.HelpY, g.Controls(), platformcore.ColorDim)

	s := g.state
	var msg string
	color := platformcore.ColorHUD
	switch {
	case s.Flash() > 0:
		fail := s.LastFailure()
		msg = fmt.Sprintf("Blocked at %v: %s", fail.FailedAt, failText(fail.Reason))
		color = platformcore.ColorWarning
	case s.Cleared():
		msg = fmt.Sprintf("Board cleared in %d turns, score %d", s.Turns(), s.Score())
	case g.level != nil && s.Turns() == 0:
		msg = g.level.Metadata["hint"]
		color = platformcore.ColorDim
	}
	if msg != "" {
		dst.DrawTextColor(b.X, g.layout.HelpY+1, msg, color)
	}
}

func failText(r core.FailReason) string {
	switch r {
	case core.FailNoDirection:
		return "tile has no route"
	case core.FailOffBoard:
		return "route leaves the board"
	default:
		return r.String()
	}
}
