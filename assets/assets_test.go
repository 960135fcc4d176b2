package assets

import (
	"testing"

	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevels(t *testing.T) {
	opts := leveldata.DefaultOptions()
	opts.Verify = true

	levels, names, err := leveldata.LoadAllLevelsWith(FS(), LevelsDir, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"rooms", "showcase"}, names)

	for _, name := range names {
		data := levels[name]
		assert.NotEmpty(t, data.SolidRects, name)
		assert.NotEmpty(t, data.Occluders, name)
		assert.Len(t, data.SpawnPoints, 2, name)
		assert.Less(t, len(data.SolidRects), data.SolidTiles, "%s: tiles merge into fewer colliders", name)
	}
}
