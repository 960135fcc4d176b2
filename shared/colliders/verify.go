package colliders

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-geom/shared/tilegrid"
)

var (
	ErrOutOfBounds = errors.New("colliders: rect outside grid")
	ErrOverlap     = errors.New("colliders: rects overlap")
	ErrUncovered   = errors.New("colliders: solid cell not covered")
	ErrExtraCell   = errors.New("colliders: rect covers open cell")
	ErrMisgrouped  = errors.New("colliders: rect spans more than one group")
)

// Verify checks that rects cover exactly the solid cells of g, once each,
// and that no rect mixes groups.
func Verify(g tilegrid.Grid, rects []Rect) error {
	w, h := tilegrid.Dims(g)
	owner := make([]int, w*h)
	for i := range owner {
		owner[i] = -1
	}

	for i, r := range rects {
		if r.Left < 0 || r.Right >= w || r.Bottom < 0 || r.Top >= h || r.Left > r.Right || r.Bottom > r.Top {
			return fmt.Errorf("rect %d %+v: %w", i, r, ErrOutOfBounds)
		}
		for y := r.Bottom; y <= r.Top; y++ {
			for x := r.Left; x <= r.Right; x++ {
				if !g.IsSolid(x, y) {
					return fmt.Errorf("rect %d cell (%d,%d): %w", i, x, y, ErrExtraCell)
				}
				if tilegrid.GroupOf(g, x, y) != r.Group {
					return fmt.Errorf("rect %d cell (%d,%d): %w", i, x, y, ErrMisgrouped)
				}
				if j := owner[y*w+x]; j >= 0 {
					return fmt.Errorf("rects %d and %d at (%d,%d): %w", j, i, x, y, ErrOverlap)
				}
				owner[y*w+x] = i
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.IsSolid(x, y) && owner[y*w+x] < 0 {
				return fmt.Errorf("cell (%d,%d): %w", x, y, ErrUncovered)
			}
		}
	}
	return nil
}
