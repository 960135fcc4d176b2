// Package colliders partitions the solid cells of a tile grid into
// non-overlapping axis-aligned rectangles for use as static physics bodies.
package colliders

// Plate is a maximal horizontal run of solid cells in one row. Bounds are
// inclusive.
type Plate struct {
	Row, Left, Right int
	Group            int
}

func (p Plate) Width() int { return p.Right - p.Left + 1 }

func (p Plate) key() plateKey {
	return plateKey{left: p.Left, right: p.Right, group: p.Group}
}

// plateKey identifies plates that may stack into one rectangle.
type plateKey struct {
	left, right, group int
}

// Rect is a block of solid cells with inclusive bounds. Bottom is the
// smallest row index and Top the largest.
type Rect struct {
	Left, Right int
	Bottom, Top int
	Group       int
}

func (r Rect) Width() int  { return r.Right - r.Left + 1 }
func (r Rect) Height() int { return r.Top - r.Bottom + 1 }
func (r Rect) Cells() int  { return r.Width() * r.Height() }

// Contains reports whether cell (x,y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right &&
		r.Bottom <= o.Top && o.Bottom <= r.Top
}

// World converts r to a world-space box whose origin is the corner of the
// Left/Bottom cell.
func (r Rect) World(tileW, tileH float64) (x, y, w, h float64) {
	return float64(r.Left) * tileW,
		float64(r.Bottom) * tileH,
		float64(r.Width()) * tileW,
		float64(r.Height()) * tileH
}

// Center returns the world-space midpoint of r.
func (r Rect) Center(tileW, tileH float64) (float64, float64) {
	return float64(r.Left+r.Right+1) * tileW / 2,
		float64(r.Bottom+r.Top+1) * tileH / 2
}
