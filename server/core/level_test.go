package core

import (
	"testing"

	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerLevel(t *testing.T) {
	data := &leveldata.CollisionData{
		SolidRects: []leveldata.SolidRect{
			{X: 0, Y: 48, W: 64, H: 16},
			{X: 16, Y: 32, W: 16, H: 16, SlopeType: gamemath.SlopeUpRight},
			{X: 32, Y: 32, W: 16, H: 16, SlopeType: "spiral"},
		},
		SolidTiles: 6,
		MapWidth:   96,
		MapHeight:  64,
		TileWidth:  16,
		TileHeight: 16,
	}
	level := NewServerLevel(data)
	objs := level.Space.Objects()
	require.Len(t, objs, 3)

	// Objects() walks cells, so look objects up by position
	byX := make(map[float64]bool, len(objs))
	for _, o := range objs {
		switch o.X {
		case 0:
			assert.True(t, o.HasTags(tagSolid))
			assert.Equal(t, 64.0, o.W)
		case 16:
			assert.True(t, o.HasTags(tagRamp))
			assert.True(t, o.HasTags(gamemath.SlopeUpRight))
		case 32:
			assert.True(t, o.HasTags(tagSolid), "unknown slopes fall back to solid")
		}
		byX[o.X] = true
	}
	assert.Len(t, byX, 3)

	total, ramps := level.Colliders()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, ramps, "unknown slope types are not ramps")
	assert.Equal(t, 96, level.MapWidth)
}

func TestLoadAllServerLevels(t *testing.T) {
	levels, names, err := LoadAllServerLevels("../../shared/leveldata/testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"arena", "box"}, names)

	box := levels["box"]
	assert.Len(t, box.Space.Objects(), 4)
	assert.Len(t, box.Occluders, 8)
	assert.Len(t, levels["arena"].SpawnPoints, 2)

	_, _, err = LoadAllServerLevels(t.TempDir())
	assert.Error(t, err)
}
