package systems

import (
	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/config"
	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/automoto/doomerang-geom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	level := levelData.CurrentLevel

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ResetCamera(camera, level)
	}

	if camera.ZoomTween != nil {
		zoom, done := camera.ZoomTween.Update(1 / float32(ebiten.TPS()))
		camera.Zoom = float64(zoom)
		if done {
			camera.ZoomTween = nil
		}
	} else {
		if ebiten.IsKeyPressed(ebiten.KeyE) {
			camera.Zoom *= config.Camera.ZoomStep
		}
		if ebiten.IsKeyPressed(ebiten.KeyQ) {
			camera.Zoom /= config.Camera.ZoomStep
		}
		camera.Zoom = gamemath.ClampFloat(camera.Zoom, config.Camera.MinZoom, config.Camera.MaxZoom)
	}

	dx, dy := panInput()
	speed := config.Camera.PanSpeed / camera.Zoom
	camera.Position.X += dx * speed
	camera.Position.Y += dy * speed

	camera.Position.X, camera.Position.Y = gamemath.ClampCamera(
		camera.Position.X, camera.Position.Y, camera.Zoom,
		float64(config.C.Width), float64(config.C.Height),
		float64(level.MapWidth), float64(level.MapHeight),
	)
}

// ResetCamera recenters on the level and eases the zoom back to fit it.
func ResetCamera(camera *components.CameraData, level *leveldata.CollisionData) {
	x, y, zoom := factory.FitView(level)
	camera.Position.X = x
	camera.Position.Y = y
	camera.ZoomTween = gween.New(float32(camera.Zoom), float32(zoom), float32(config.Camera.ResetSeconds), ease.OutQuad)
}

func panInput() (dx, dy float64) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	return dx, dy
}
