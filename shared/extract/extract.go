// Package extract runs collider partitioning and occluder tracing over one
// grid snapshot.
package extract

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-geom/shared/colliders"
	"github.com/automoto/doomerang-geom/shared/occluders"
	"github.com/automoto/doomerang-geom/shared/tilegrid"
	"golang.org/x/sync/errgroup"
)

// ErrTileSize indicates a non-positive tile width or height.
var ErrTileSize = errors.New("extract: tile size must be positive")

// Options controls a Run.
type Options struct {
	TileWidth  float64
	TileHeight float64
	// Verify re-checks both outputs against the grid after building them.
	Verify bool
}

// Geometry is everything extracted from one grid.
type Geometry struct {
	Rects    []colliders.Rect
	Segments []occluders.Segment
}

// Run builds the collider rects and occluder segments of g. The two passes
// only read g, so they run concurrently.
func Run(g tilegrid.Grid, opts Options) (Geometry, error) {
	if opts.TileWidth <= 0 || opts.TileHeight <= 0 {
		return Geometry{}, fmt.Errorf("%vx%v: %w", opts.TileWidth, opts.TileHeight, ErrTileSize)
	}

	var (
		geom Geometry
		eg   errgroup.Group
	)
	eg.Go(func() error {
		geom.Rects = colliders.Partition(g)
		if opts.Verify {
			return colliders.Verify(g, geom.Rects)
		}
		return nil
	})
	eg.Go(func() error {
		geom.Segments = occluders.Build(g, opts.TileWidth, opts.TileHeight)
		if opts.Verify {
			return occluders.Verify(g, geom.Segments, opts.TileWidth, opts.TileHeight)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return Geometry{}, err
	}
	return geom, nil
}
