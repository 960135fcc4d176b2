package extract_test

import (
	"testing"

	"github.com/automoto/doomerang-geom/shared/colliders"
	"github.com/automoto/doomerang-geom/shared/extract"
	"github.com/automoto/doomerang-geom/shared/occluders"
	"github.com/automoto/doomerang-geom/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMatchesPasses(t *testing.T) {
	g := tilegrid.MustParse(
		"####....",
		"#..#.22.",
		"####.22.",
	)
	geom, err := extract.Run(g, extract.Options{TileWidth: 16, TileHeight: 16, Verify: true})
	require.NoError(t, err)
	assert.Equal(t, colliders.Partition(g), geom.Rects)
	assert.Equal(t, occluders.Build(g, 16, 16), geom.Segments)
}

func TestRunEmptyGrid(t *testing.T) {
	geom, err := extract.Run(tilegrid.NewBitmap(4, 4), extract.Options{TileWidth: 16, TileHeight: 16, Verify: true})
	require.NoError(t, err)
	assert.Empty(t, geom.Rects)
	assert.Empty(t, geom.Segments)

	geom, err = extract.Run(tilegrid.NewBitmap(-1, -1), extract.Options{TileWidth: 16, TileHeight: 16})
	require.NoError(t, err)
	assert.Empty(t, geom.Rects)
	assert.Empty(t, geom.Segments)
}

func TestRunRejectsTileSize(t *testing.T) {
	g := tilegrid.NewBitmap(1, 1)
	for _, opts := range []extract.Options{
		{TileWidth: 0, TileHeight: 16},
		{TileWidth: 16, TileHeight: -2},
	} {
		_, err := extract.Run(g, opts)
		assert.ErrorIs(t, err, extract.ErrTileSize)
	}
}
