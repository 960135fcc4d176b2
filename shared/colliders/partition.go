package colliders

import (
	"fmt"

	"github.com/automoto/doomerang-geom/shared/tilegrid"
)

// RowPlates returns the plates of row y from left to right. A run ends at
// an open cell, at a change of group, or one column past the right edge.
func RowPlates(g tilegrid.Grid, y int) []Plate {
	w, h := tilegrid.Dims(g)
	if y < 0 || y >= h {
		return nil
	}

	var plates []Plate
	start, group := -1, 0
	// x == w is the synthetic column that closes runs touching the right edge
	for x := 0; x <= w; x++ {
		solid := tilegrid.Solid(g, x, y)
		key := 0
		if solid {
			key = tilegrid.GroupOf(g, x, y)
		}
		if start >= 0 && (!solid || key != group) {
			plates = append(plates, Plate{Row: y, Left: start, Right: x - 1, Group: group})
			start = -1
		}
		if start < 0 && solid {
			start, group = x, key
		}
	}
	return plates
}

// Partition covers every solid cell of g with exactly one rectangle.
// Plates from consecutive rows stack only when their left, right and group
// all match, so the result is exact but not always the fewest possible.
func Partition(g tilegrid.Grid) []Rect {
	w, h := tilegrid.Dims(g)
	if w == 0 || h == 0 {
		return nil
	}

	var (
		rects []Rect
		prev  []Plate
		open  = make(map[plateKey]Rect)
	)
	// y == h is an empty row that closes rects touching the top edge
	for y := 0; y <= h; y++ {
		cur := RowPlates(g, y)

		present := make(map[plateKey]struct{}, len(cur))
		for _, p := range cur {
			present[p.key()] = struct{}{}
		}
		for _, p := range prev {
			k := p.key()
			if _, ok := present[k]; ok {
				continue
			}
			if r, ok := open[k]; ok {
				mustFit(r, w, h)
				rects = append(rects, r)
				delete(open, k)
			}
		}

		for _, p := range cur {
			k := p.key()
			if r, ok := open[k]; ok {
				r.Top = y
				open[k] = r
				continue
			}
			open[k] = Rect{Left: p.Left, Right: p.Right, Bottom: y, Top: y, Group: p.Group}
		}
		prev = cur
	}
	return rects
}

func mustFit(r Rect, w, h int) {
	if r.Left < 0 || r.Right >= w || r.Bottom < 0 || r.Top >= h || r.Left > r.Right || r.Bottom > r.Top {
		panic(fmt.Sprintf("colliders: rect %+v outside %dx%d grid", r, w, h))
	}
}
