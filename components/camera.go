package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64

	// Set while the view eases back to fit the level; nil otherwise.
	ZoomTween *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
