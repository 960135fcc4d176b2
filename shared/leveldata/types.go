// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import (
	"github.com/automoto/doomerang-geom/shared/colliders"
	"github.com/automoto/doomerang-geom/shared/occluders"
	"github.com/automoto/doomerang-geom/shared/tilegrid"
)

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	Occluders   []occluders.Segment
	SpawnPoints []SpawnPoint
	Grid        *tilegrid.Labels // box tiles, keyed by region
	SolidTiles  int              // tiles read from the solid layer, slopes included
	MapWidth    int
	MapHeight   int
	TileWidth   int
	TileHeight  int
}

// SolidRect is a merged block of solid tiles in world space, or a single
// slope tile when SlopeType is set.
type SolidRect struct {
	X, Y, W, H float64
	SlopeType  string // "", "45_up_right", "45_up_left"
	Cells      colliders.Rect
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Options names the parts of a TMX file the loader reads.
type Options struct {
	SolidLayer     string // tile layer holding walls
	SpawnGroup     string // object group holding player spawns
	SlopeProperty  string // tileset tile property naming a slope type
	RegionProperty string // tileset tile property grouping walls that may merge
	Verify         bool   // re-check extracted geometry against the grid
}

// DefaultOptions matches the layer and property names used by the level files.
func DefaultOptions() Options {
	return Options{
		SolidLayer:     "wg-tiles",
		SpawnGroup:     "PlayerSpawn",
		SlopeProperty:  "slope",
		RegionProperty: "region",
	}
}
