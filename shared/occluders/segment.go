// Package occluders traces the boundary between solid and open tiles as
// axis-aligned line segments for shadow casting.
package occluders

import (
	"math"

	"github.com/automoto/doomerang-geom/shared/tilegrid"
)

// Segment is one straight boundary run in world units. West/East runs go
// from low to high Y and North/South runs from low to high X.
type Segment struct {
	StartX, StartY float64
	EndX, EndY     float64
	Side           tilegrid.Side
	Group          int
}

func (s Segment) Horizontal() bool { return s.StartY == s.EndY }
func (s Segment) Vertical() bool   { return s.StartX == s.EndX }

func (s Segment) Length() float64 {
	return math.Hypot(s.EndX-s.StartX, s.EndY-s.StartY)
}

// unitSegment is the boundary of cell (x,y) on side.
func unitSegment(x, y int, side tilegrid.Side, group int, tileW, tileH float64) Segment {
	x0, y0 := float64(x)*tileW, float64(y)*tileH
	x1, y1 := float64(x+1)*tileW, float64(y+1)*tileH

	s := Segment{Side: side, Group: group}
	switch side {
	case tilegrid.West:
		s.StartX, s.StartY, s.EndX, s.EndY = x0, y0, x0, y1
	case tilegrid.East:
		s.StartX, s.StartY, s.EndX, s.EndY = x1, y0, x1, y1
	case tilegrid.South:
		s.StartX, s.StartY, s.EndX, s.EndY = x0, y0, x1, y0
	case tilegrid.North:
		s.StartX, s.StartY, s.EndX, s.EndY = x0, y1, x1, y1
	}
	return s
}

// extendTo grows s so its far end is the far corner of cell (x,y) on s.Side.
func (s *Segment) extendTo(x, y int, tileW, tileH float64) {
	if s.Side.Vertical() {
		s.EndY = float64(y+1) * tileH
		return
	}
	s.EndX = float64(x+1) * tileW
}
