package tags

import (
	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/yohamta/donburi"
)

var (
	Wall     = donburi.NewTag().SetName("Wall")
	Occluder = donburi.NewTag().SetName("Occluder")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvRamp  = "ramp"

	// Slope type tags
	Slope45UpRight = gamemath.SlopeUpRight
	Slope45UpLeft  = gamemath.SlopeUpLeft
)
