package components

import (
	"github.com/automoto/doomerang-geom/shared/occluders"
	"github.com/yohamta/donburi"
)

// OccluderData is one boundary segment that blocks sight.
type OccluderData struct {
	occluders.Segment
}

var Occluder = donburi.NewComponentType[OccluderData]()
