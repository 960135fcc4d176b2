package systems

import (
	"fmt"

	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/config"
	"github.com/automoto/doomerang-geom/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudHelp = "Tab/Shift+Tab level  F1 colliders  F2 occluders  QE zoom  R fit"

// DrawHUD prints the current level and its extraction counts. Without loaded
// fonts it falls back to the debug printer.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return
	}
	data := level.CurrentLevel

	zoom := 1.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		zoom = components.Camera.Get(cameraEntry).Zoom
	}

	status := fmt.Sprintf("%s (%d/%d)  tiles %d  colliders %d  occluders %d  zoom %.2f",
		level.CurrentName(), level.LevelIndex+1, len(level.Names),
		data.SolidTiles, len(data.SolidRects), len(data.Occluders), zoom)

	height := screen.Bounds().Dy()
	if !fonts.Loaded(fonts.HUD) || !fonts.Loaded(fonts.Small) {
		ebitenutil.DebugPrintAt(screen, status, 4, 4)
		ebitenutil.DebugPrintAt(screen, hudHelp, 4, height-20)
		return
	}
	text.Draw(screen, status, fonts.HUD.Get(), 4, 14, config.White)
	text.Draw(screen, hudHelp, fonts.Small.Get(), 4, height-6, config.Grey)
}
