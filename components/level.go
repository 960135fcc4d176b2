package components

import (
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.CollisionData
	LevelIndex   int
	Names        []string // sorted level stems
	Levels       map[string]*leveldata.CollisionData
}

// CurrentName returns the stem of the current level, or "" when none is loaded.
func (l *LevelData) CurrentName() string {
	if l.LevelIndex < 0 || l.LevelIndex >= len(l.Names) {
		return ""
	}
	return l.Names[l.LevelIndex]
}

var Level = donburi.NewComponentType[LevelData]()
