package factory

import (
	"github.com/automoto/doomerang-geom/archetypes"
	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/shared/occluders"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateOccluder(ecs *ecs.ECS, seg occluders.Segment) *donburi.Entry {
	occ := archetypes.Occluder.Spawn(ecs)
	components.Occluder.SetValue(occ, components.OccluderData{Segment: seg})
	return occ
}
