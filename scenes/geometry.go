package scenes

import (
	"log"
	"sync"

	"github.com/automoto/doomerang-geom/components"
	cfg "github.com/automoto/doomerang-geom/config"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/automoto/doomerang-geom/systems"
	"github.com/automoto/doomerang-geom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GeometryScene shows the extracted colliders and occluders of one level at
// a time. Tab moves to the next level and rebuilds the world.
type GeometryScene struct {
	ecs        *ecs.ECS
	levels     map[string]*leveldata.CollisionData
	names      []string
	levelIndex int
	settings   components.SettingsData
	once       sync.Once
}

func NewGeometryScene(levels map[string]*leveldata.CollisionData, names []string, levelIndex int, settings components.SettingsData) *GeometryScene {
	if levelIndex < 0 || levelIndex >= len(names) {
		levelIndex = 0
	}
	return &GeometryScene{
		levels:     levels,
		names:      names,
		levelIndex: levelIndex,
		settings:   settings,
	}
}

func (gs *GeometryScene) Update() {
	gs.once.Do(gs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		gs.switchLevel(step)
	}

	gs.ecs.Update()
}

func (gs *GeometryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Canvas)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// switchLevel moves step levels forward, wrapping around, and keeps the
// overlay toggles across the rebuild.
func (gs *GeometryScene) switchLevel(step int) {
	n := len(gs.names)
	if n < 2 {
		return
	}
	gs.settings = *systems.GetOrCreateSettings(gs.ecs)
	gs.levelIndex = ((gs.levelIndex+step)%n + n) % n
	systems.SaveCurrentSettings(&gs.settings, gs.levelIndex)
	gs.configure()
}

func (gs *GeometryScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	gs.ecs = ecs

	level := factory.CreateLevel(gs.ecs, gs.levels, gs.names, gs.levelIndex)
	levelData := components.Level.Get(level)
	gs.levelIndex = levelData.LevelIndex

	factory.CreateSettings(gs.ecs, gs.settings)
	factory.CreateLevelGeometry(gs.ecs, levelData.CurrentLevel)
	factory.CreateLevelCamera(gs.ecs, levelData.CurrentLevel)

	log.Printf("Showing %s: %d colliders, %d occluders",
		levelData.CurrentName(), len(levelData.CurrentLevel.SolidRects), len(levelData.CurrentLevel.Occluders))
}
