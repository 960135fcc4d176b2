package factory

import (
	"log"

	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelGeometry builds the collision space for a level and fills it
// with one wall per merged rect and one entity per occluder segment. Slope
// types without a known ramp shape become solid walls, as on the server.
func CreateLevelGeometry(ecs *ecs.ECS, data *leveldata.CollisionData) {
	CreateSpace(ecs, data.MapWidth, data.MapHeight, data.TileWidth, data.TileHeight)

	for _, r := range data.SolidRects {
		if gamemath.KnownSlope(r.SlopeType) {
			CreateSlopeWall(ecs, r.X, r.Y, r.W, r.H, r.SlopeType)
			continue
		}
		if r.SlopeType != "" {
			log.Printf("Unknown slope type %q at (%.0f,%.0f), treating as solid", r.SlopeType, r.X, r.Y)
		}
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	for _, seg := range data.Occluders {
		CreateOccluder(ecs, seg)
	}
}
