package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/routeboard/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorGrid:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorRoute:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorPiece:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorCollided: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorOutput:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// styleFor returns the style registered for c, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
