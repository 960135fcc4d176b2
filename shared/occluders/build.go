package occluders

import "github.com/automoto/doomerang-geom/shared/tilegrid"

// cellEdges records, per side, which segment already owns that side of a
// cell. Only valid during one Build call.
type cellEdges struct {
	exists [4]bool
	id     [4]int
}

// Build returns the boundary segments of every solid region in g. A side is
// a boundary when the neighbor across it is open, off-grid, or in another
// group. Vertical runs are continued from the cell below and horizontal runs
// from the cell to the west, so each run is built in a single scan.
func Build(g tilegrid.Grid, tileW, tileH float64) []Segment {
	w, h := tilegrid.Dims(g)
	if w == 0 || h == 0 {
		return nil
	}

	cells := make([]cellEdges, w*h)
	var segments []Segment

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.IsSolid(x, y) {
				continue
			}
			c := &cells[y*w+x]
			group := tilegrid.GroupOf(g, x, y)

			for _, side := range tilegrid.Sides {
				dx, dy := side.Offset()
				if tilegrid.Joined(g, x, y, x+dx, y+dy) {
					continue
				}

				px, py := x-1, y
				if side.Vertical() {
					px, py = x, y-1
				}
				if tilegrid.Joined(g, x, y, px, py) {
					if prev := &cells[py*w+px]; prev.exists[side] {
						id := prev.id[side]
						segments[id].extendTo(x, y, tileW, tileH)
						c.exists[side], c.id[side] = true, id
						continue
					}
				}

				c.exists[side], c.id[side] = true, len(segments)
				segments = append(segments, unitSegment(x, y, side, group, tileW, tileH))
			}
		}
	}
	return segments
}
