// Package levels provides hand-made opening boards for the routing board.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/routeboard/internal/games/routeboard/core"
	"github.com/vovakirdan/routeboard/internal/games/routeboard/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID         string
	Name       string
	Occupancy  [core.Cells]bool
	Directions [core.Cells]core.Dir
	Metadata   map[string]string
	FilePath   string
}

// Pieces returns the number of pieces the level opens with.
func (l *Level) Pieces() int {
	n := 0
	for _, occ := range l.Occupancy {
		if occ {
			n++
		}
	}
	return n
}

// Apply loads the level onto s, replacing its pieces and routing.
func (l *Level) Apply(s *core.State) {
	s.Load(l.Occupancy, l.Directions)
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader reading levels below a directory.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin directory missing: %v", err))
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		level, err := l.load(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

func (l *Loader) load(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, path.Ext(p), path.Join(l.root, p))
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	i := slices.IndexFunc(levels, func(lvl Level) bool { return lvl.ID == id })
	if i < 0 {
		return Level{}, fmt.Errorf("level not found: %s", id)
	}
	return levels[i], nil
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadFile loads a single level file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, filepath.Ext(p), p)
}

func parse(data []byte, ext, origin string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", origin, err)
	}
	return Level{
		ID:         parsed.ID,
		Name:       parsed.Name,
		Occupancy:  parsed.Occupancy,
		Directions: parsed.Directions,
		Metadata:   parsed.Metadata,
		FilePath:   origin,
	}, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(ext))
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
