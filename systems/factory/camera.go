package factory

import (
	"github.com/automoto/doomerang-geom/archetypes"
	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/config"
	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera at (x,y) with no zoom.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
		Zoom:     1,
	})
	return camera
}

// CreateLevelCamera centers the camera on the level, zoomed to fit it on screen.
func CreateLevelCamera(ecs *ecs.ECS, data *leveldata.CollisionData) *donburi.Entry {
	x, y, zoom := FitView(data)
	camera := CreateCamera(ecs, x, y)
	components.Camera.Get(camera).Zoom = zoom
	return camera
}

// FitView returns the camera center and zoom that show the whole level.
func FitView(data *leveldata.CollisionData) (x, y, zoom float64) {
	w, h := float64(data.MapWidth), float64(data.MapHeight)
	zoom = gamemath.FitZoom(float64(config.C.Width), float64(config.C.Height), w, h, config.Camera.MinZoom, config.Camera.MaxZoom)
	return w / 2, h / 2, zoom
}
