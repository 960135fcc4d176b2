package factory

import (
	"github.com/automoto/doomerang-geom/archetypes"
	"github.com/automoto/doomerang-geom/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// defaultCellSize is used when a level does not report its tile size.
const defaultCellSize = 16

// CreateSpace creates the collision space. Walls created afterwards are
// added to it.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	if cellWidth <= 0 {
		cellWidth = defaultCellSize
	}
	if cellHeight <= 0 {
		cellHeight = defaultCellSize
	}
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}
