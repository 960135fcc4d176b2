package occluders

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/doomerang-geom/shared/tilegrid"
)

var (
	ErrNotAxisAligned = errors.New("occluders: segment is not axis-aligned")
	ErrOffLattice     = errors.New("occluders: segment endpoint is not on a tile corner")
	ErrStraySide      = errors.New("occluders: segment lies on a side no solid cell exposes")
	ErrUncoveredSide  = errors.New("occluders: exposed side has no segment")
	ErrDoubleCover    = errors.New("occluders: side covered by more than one segment")
	ErrInteriorSide   = errors.New("occluders: segment covers a side between joined cells")
	ErrNotMaximal     = errors.New("occluders: contiguous segments were not merged")
)

type cellSide struct {
	x, y int
	side tilegrid.Side
}

type endpoint struct {
	x, y  float64
	side  tilegrid.Side
	group int
}

// Verify checks that segments cover every exposed side of every solid cell
// exactly once, cover no interior side, and that no two contiguous segments
// on the same side and group were left unmerged.
func Verify(g tilegrid.Grid, segments []Segment, tileW, tileH float64) error {
	cover := make(map[cellSide]int)
	ends := make(map[endpoint]int, len(segments))

	for i, s := range segments {
		if !s.Horizontal() && !s.Vertical() {
			return fmt.Errorf("segment %d %+v: %w", i, s, ErrNotAxisAligned)
		}
		x0, ok0 := lattice(s.StartX, tileW)
		y0, ok1 := lattice(s.StartY, tileH)
		x1, ok2 := lattice(s.EndX, tileW)
		y1, ok3 := lattice(s.EndY, tileH)
		if !ok0 || !ok1 || !ok2 || !ok3 {
			return fmt.Errorf("segment %d %+v: %w", i, s, ErrOffLattice)
		}

		var sides []cellSide
		switch s.Side {
		case tilegrid.West, tilegrid.East:
			if x0 != x1 || y1 <= y0 {
				return fmt.Errorf("segment %d %+v: %w", i, s, ErrNotAxisAligned)
			}
			cx := x0
			if s.Side == tilegrid.East {
				cx--
			}
			for y := y0; y < y1; y++ {
				sides = append(sides, cellSide{cx, y, s.Side})
			}
		default:
			if y0 != y1 || x1 <= x0 {
				return fmt.Errorf("segment %d %+v: %w", i, s, ErrNotAxisAligned)
			}
			cy := y0
			if s.Side == tilegrid.North {
				cy--
			}
			for x := x0; x < x1; x++ {
				sides = append(sides, cellSide{x, cy, s.Side})
			}
		}

		for _, cs := range sides {
			if !tilegrid.Solid(g, cs.x, cs.y) || tilegrid.GroupOf(g, cs.x, cs.y) != s.Group {
				return fmt.Errorf("segment %d at cell (%d,%d) %s: %w", i, cs.x, cs.y, cs.side, ErrStraySide)
			}
			cover[cs]++
		}
		ends[endpoint{s.EndX, s.EndY, s.Side, s.Group}] = i
	}

	for i, s := range segments {
		if j, ok := ends[endpoint{s.StartX, s.StartY, s.Side, s.Group}]; ok {
			return fmt.Errorf("segments %d and %d: %w", j, i, ErrNotMaximal)
		}
	}

	w, h := tilegrid.Dims(g)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.IsSolid(x, y) {
				continue
			}
			for _, side := range tilegrid.Sides {
				dx, dy := side.Offset()
				n := cover[cellSide{x, y, side}]
				exposed := !tilegrid.Joined(g, x, y, x+dx, y+dy)
				switch {
				case exposed && n == 0:
					return fmt.Errorf("cell (%d,%d) %s: %w", x, y, side, ErrUncoveredSide)
				case exposed && n > 1:
					return fmt.Errorf("cell (%d,%d) %s: %w", x, y, side, ErrDoubleCover)
				case !exposed && n > 0:
					return fmt.Errorf("cell (%d,%d) %s: %w", x, y, side, ErrInteriorSide)
				}
			}
		}
	}
	return nil
}

// lattice converts a world coordinate to a tile index, reporting whether it
// sits on a tile boundary.
func lattice(v, tile float64) (int, bool) {
	f := v / tile
	r := math.Round(f)
	return int(r), math.Abs(f-r) < 1e-9
}
