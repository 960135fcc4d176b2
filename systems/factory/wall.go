package factory

import (
	"github.com/automoto/doomerang-geom/archetypes"
	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates one static collider covering a merged block of tiles.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createWall(ecs, resolv.NewObject(x, y, w, h, tags.ResolvSolid))
}

// CreateSlopeWall creates a slope tile for ramp collision
// Uses rectangular bounds for detection, surface height is calculated mathematically
func CreateSlopeWall(ecs *ecs.ECS, x, y, w, h float64, slopeType string) *donburi.Entry {
	return createWall(ecs, resolv.NewObject(x, y, w, h, tags.ResolvRamp, slopeType))
}

func createWall(ecs *ecs.ECS, obj *resolv.Object) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
