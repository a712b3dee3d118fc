// Package core provides the simulation engine for the Routing Board puzzle.
// This package is UI-agnostic and deterministic for a given seed.
package core

import "fmt"

// Board dimensions and the output tile are fixed at build time.
const (
	W = 10
	H = 10

	OutX = 5
	OutY = 0

	// Cells is the total number of tiles on the board.
	Cells = W * H
)

// Dir is the routing assignment of a single tile.
// Values match the wire encoding used by the router advisor (0..4).
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// dirCycle is the order used when cycling a tile's direction.
var dirCycle = [...]Dir{DirNone, DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the five known directions.
func (d Dir) Valid() bool {
	return d <= DirLeft
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
// ok is false for DirNone, which has no movement vector.
func (d Dir) Delta() (dx, dy int, ok bool) {
	switch d {
	case DirUp:
		return 0, -1, true
	case DirRight:
		return 1, 0, true
	case DirDown:
		return 0, 1, true
	case DirLeft:
		return -1, 0, true
	default:
		return 0, 0, false
	}
}

// Next returns the direction after d in the routing cycle.
// With reverse set, the cycle runs backwards.
func (d Dir) Next(reverse bool) Dir {
	n := len(dirCycle)
	idx := 0
	for i, c := range dirCycle {
		if c == d {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx - 1 + n) % n
	} else {
		idx = (idx + 1) % n
	}
	return dirCycle[idx]
}

// Coord is a tile position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in direction d.
// DirNone returns c unchanged.
func (c Coord) Step(d Dir) Coord {
	dx, dy, _ := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < W && c.Y >= 0 && c.Y < H
}

// Index returns the row-major index of c (y*W + x).
func (c Coord) Index() int {
	return c.Y*W + c.X
}

// CoordAt converts a row-major index back to a coordinate.
func CoordAt(idx int) Coord {
	return Coord{X: idx % W, Y: idx / W}
}

// Output is the coordinate of the output tile.
var Output = Coord{X: OutX, Y: OutY}

// Mode selects what a pointer interaction edits.
type Mode uint8

const (
	ModePlacement Mode = iota
	ModeRouting
)

// String returns the HUD label for the mode.
func (m Mode) String() string {
	if m == ModeRouting {
		return "Routing"
	}
	return "Placement"
}
