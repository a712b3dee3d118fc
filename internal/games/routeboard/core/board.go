package core

// Board holds the three parallel per-cell grids. Readers get it by value.
// All accessors are bounds-checked; out-of-range coordinates read as empty
// and writes to them are ignored.
type Board struct {
	occ      [H][W]bool
	dirs     [H][W]Dir
	collided [H][W]bool
}

// Occupied reports whether a piece sits on c.
func (b Board) Occupied(c Coord) bool {
	if !c.InBounds() {
		return false
	}
	return b.occ[c.Y][c.X]
}

// Direction returns the routing assignment of c.
func (b Board) Direction(c Coord) Dir {
	if !c.InBounds() {
		return DirNone
	}
	return b.dirs[c.Y][c.X]
}

// Collided reports whether pieces merged on c during the last step.
func (b Board) Collided(c Coord) bool {
	if !c.InBounds() {
		return false
	}
	return b.collided[c.Y][c.X]
}

// OccupiedCount returns the number of occupied cells.
func (b Board) OccupiedCount() int {
	n := 0
	for y := range H {
		for x := range W {
			if b.occ[y][x] {
				n++
			}
		}
	}
	return n
}

// Occupancy returns a copy of the occupancy grid.
func (b Board) Occupancy() [H][W]bool {
	return b.occ
}

// Directions returns a copy of the direction grid.
func (b Board) Directions() [H][W]Dir {
	return b.dirs
}

func (b *Board) setOccupied(c Coord, v bool) {
	if c.InBounds() {
		b.occ[c.Y][c.X] = v
	}
}

func (b *Board) setDirection(c Coord, d Dir) {
	if c.InBounds() && d.Valid() {
		b.dirs[c.Y][c.X] = d
	}
}

func (b *Board) clearOccupancy() {
	b.occ = [H][W]bool{}
}

func (b *Board) clearCollided() {
	b.collided = [H][W]bool{}
}

func (b *Board) clearDirections() {
	b.dirs = [H][W]Dir{}
}
