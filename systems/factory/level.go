package factory

import (
	"github.com/automoto/doomerang-geom/archetypes"
	"github.com/automoto/doomerang-geom/components"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity for names[levelIndex]. Out of range
// indices fall back to the first level.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.CollisionData, names []string, levelIndex int) *donburi.Entry {
	if len(names) == 0 {
		panic("no levels to show")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(names) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		Names:        names,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[names[levelIndex]],
	})
	return level
}
