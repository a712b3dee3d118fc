// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
)

// YAMLLevel represents the YAML structure for a level file.
// Pieces and Routes are drawn as core.H rows of core.W characters.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Pieces   []string          `yaml:"pieces,omitempty"`
	Routes   []string          `yaml:"routes,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID         string
	Name       string
	Occupancy  [core.Cells]bool
	Directions [core.Cells]core.Dir
	Metadata   map[string]string
}

// Piece and route glyphs. Lowercase 'x' is accepted as a piece too.
const (
	glyphEmpty = '.'
	glyphPiece = 'o'
)

var routeGlyphs = map[rune]core.Dir{
	'.': core.DirNone,
	'^': core.DirUp,
	'>': core.DirRight,
	'v': core.DirDown,
	'<': core.DirLeft,
}

// ParseYAML parses a YAML level file. Omitted grids mean an empty board or
// no routing.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	if len(yl.Pieces) > 0 {
		err := eachGlyph(yl.Pieces, "pieces", func(i int, r rune) error {
			switch r {
			case glyphEmpty:
			case glyphPiece, 'x':
				level.Occupancy[i] = true
			default:
				return fmt.Errorf("unknown piece glyph %q", r)
			}
			return nil
		})
		if err != nil {
			return Level{}, err
		}
	}

	if len(yl.Routes) > 0 {
		err := eachGlyph(yl.Routes, "routes", func(i int, r rune) error {
			d, ok := routeGlyphs[r]
			if !ok {
				return fmt.Errorf("unknown route glyph %q", r)
			}
			level.Directions[i] = d
			return nil
		})
		if err != nil {
			return Level{}, err
		}
	}

	return level, nil
}

// eachGlyph checks the grid shape and calls fn with the row-major index of
// every glyph.
func eachGlyph(rows []string, field string, fn func(i int, r rune) error) error {
	if len(rows) != core.H {
		return fmt.Errorf("%s: want %d rows, got %d", field, core.H, len(rows))
	}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != core.W {
			return fmt.Errorf("%s row %d: want %d columns, got %d", field, y, core.W, n)
		}
		x := 0
		for _, r := range row {
			if err := fn(core.C(x, y).Index(), r); err != nil {
				return fmt.Errorf("%s (%d,%d): %w", field, x, y, err)
			}
			x++
		}
	}
	return nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
