// Package tilegrid holds the occupancy grids that geometry extraction reads.
// It has no dependencies on ebitengine, donburi, or resolv.
package tilegrid

// Grid answers which cells of a W x H tile map are solid. Coordinates
// outside [0,W) x [0,H) must report false.
type Grid interface {
	Width() int
	Height() int
	IsSolid(x, y int) bool
}

// Grouped is a Grid whose solid cells carry a group key. Geometry is never
// merged across cells with different keys.
type Grouped interface {
	Grid
	Group(x, y int) int
}

// Dims returns the grid dimensions with negative values clamped to zero.
func Dims(g Grid) (int, int) {
	w, h := g.Width(), g.Height()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// InBounds reports whether (x,y) lies inside the grid.
func InBounds(g Grid, x, y int) bool {
	w, h := Dims(g)
	return x >= 0 && x < w && y >= 0 && y < h
}

// Solid is a bounds-checked IsSolid. Off-grid cells are open.
func Solid(g Grid, x, y int) bool {
	return InBounds(g, x, y) && g.IsSolid(x, y)
}

// GroupOf returns the group key of (x,y), or 0 when g is not Grouped.
func GroupOf(g Grid, x, y int) int {
	if gg, ok := g.(Grouped); ok {
		return gg.Group(x, y)
	}
	return 0
}

// Joined reports whether both cells are solid and share a group.
func Joined(g Grid, x0, y0, x1, y1 int) bool {
	if !Solid(g, x0, y0) || !Solid(g, x1, y1) {
		return false
	}
	return GroupOf(g, x0, y0) == GroupOf(g, x1, y1)
}

// Count returns the number of solid cells.
func Count(g Grid) int {
	w, h := Dims(g)
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.IsSolid(x, y) {
				n++
			}
		}
	}
	return n
}
