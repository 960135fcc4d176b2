package systems

import (
	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/config"
	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/automoto/doomerang-geom/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world space to the screen for one frame.
type view struct {
	camX, camY float64
	zoom       float64
	w, h       float64
}

func (v view) toScreen(x, y float64) (float32, float32) {
	sx, sy := gamemath.WorldToScreen(x, y, v.camX, v.camY, v.zoom, v.w, v.h)
	return float32(sx), float32(sy)
}

func (v view) visible(x, y, w, h float64) bool {
	return gamemath.Visible(x, y, w, h, v.camX, v.camY, v.zoom, v.w, v.h)
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowColliders && !settings.ShowOccluders {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	v := view{
		camX: camera.Position.X,
		camY: camera.Position.Y,
		zoom: camera.Zoom,
		w:    float64(screen.Bounds().Dx()),
		h:    float64(screen.Bounds().Dy()),
	}

	if settings.ShowColliders {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Objects() {
				if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
					continue
				}
				drawCollider(screen, v, obj)
			}
		}
	}

	if settings.ShowOccluders {
		width := config.Debug.LineWidth
		tags.Occluder.Each(ecs.World, func(entry *donburi.Entry) {
			seg := components.Occluder.Get(entry)
			x0, y0 := min(seg.StartX, seg.EndX), min(seg.StartY, seg.EndY)
			if !v.visible(x0, y0, max(seg.StartX, seg.EndX)-x0, max(seg.StartY, seg.EndY)-y0) {
				return
			}
			sx0, sy0 := v.toScreen(seg.StartX, seg.StartY)
			sx1, sy1 := v.toScreen(seg.EndX, seg.EndY)
			vector.StrokeLine(screen, sx0, sy0, sx1, sy1, width, config.Debug.OccluderColor, false)
		})
	}
}

// drawCollider outlines a collision object. Ramps also get their surface
// drawn as a diagonal.
func drawCollider(screen *ebiten.Image, v view, obj *resolv.Object) {
	c := config.Debug.SolidColor
	if obj.HasTags(tags.ResolvRamp) {
		c = config.Debug.RampColor
	}

	x, y := v.toScreen(obj.X, obj.Y)
	w, h := float32(obj.W*v.zoom), float32(obj.H*v.zoom)
	vector.StrokeRect(screen, x, y, w, h, config.Debug.LineWidth, c, false)

	if !obj.HasTags(tags.ResolvRamp) {
		return
	}
	slopeType := tags.Slope45UpRight
	if obj.HasTags(tags.Slope45UpLeft) {
		slopeType = tags.Slope45UpLeft
	}
	left := gamemath.SlopeSurfaceY(obj.X, obj.Y, obj.W, obj.H, slopeType, obj.X)
	right := gamemath.SlopeSurfaceY(obj.X, obj.Y, obj.W, obj.H, slopeType, obj.X+obj.W)
	lx, ly := v.toScreen(obj.X, left)
	rx, ry := v.toScreen(obj.X+obj.W, right)
	vector.StrokeLine(screen, lx, ly, rx, ry, config.Debug.LineWidth, c, false)
}
