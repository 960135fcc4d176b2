package systems

import (
	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the viewer toggles, creating them from the
// config defaults on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, DefaultSettings())
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// DefaultSettings returns the overlay toggles from config.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		ShowColliders: config.Debug.ShowColliders,
		ShowOccluders: config.Debug.ShowOccluders,
	}
}

// UpdateDebug toggles the collider overlay with F1 and the occluder overlay
// with F2. Changes are persisted right away.
func UpdateDebug(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)

	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.ShowColliders = !settings.ShowColliders
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		settings.ShowOccluders = !settings.ShowOccluders
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings, currentLevelIndex(e))
	}
}

func currentLevelIndex(e *ecs.ECS) int {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0
	}
	return components.Level.Get(levelEntry).LevelIndex
}
