package colliders_test

import (
	"math/rand"
	"testing"

	"github.com/automoto/doomerang-geom/shared/colliders"
	"github.com/automoto/doomerang-geom/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionScenarios(t *testing.T) {
	single := tilegrid.NewBitmap(4, 4)
	single.Set(1, 1, true)

	row := tilegrid.NewBitmap(4, 4)
	row.Fill(0, 0, 3, 0)

	slab := tilegrid.NewBitmap(4, 4)
	slab.Fill(0, 0, 3, 1)

	ell := tilegrid.NewBitmap(4, 4)
	ell.Fill(0, 0, 3, 0)
	ell.Set(0, 1, true)

	cases := []struct {
		name string
		grid tilegrid.Grid
		want []colliders.Rect
	}{
		{"Empty", tilegrid.NewBitmap(4, 4), nil},
		{"SingleCell", single, []colliders.Rect{{Left: 1, Right: 1, Bottom: 1, Top: 1}}},
		{"FullRow", row, []colliders.Rect{{Left: 0, Right: 3, Bottom: 0, Top: 0}}},
		{"TwoRowsMerge", slab, []colliders.Rect{{Left: 0, Right: 3, Bottom: 0, Top: 1}}},
		{"LShape", ell, []colliders.Rect{
			{Left: 0, Right: 3, Bottom: 0, Top: 0},
			{Left: 0, Right: 0, Bottom: 1, Top: 1},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := colliders.Partition(tc.grid)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, colliders.Verify(tc.grid, got))
		})
	}
}

func TestPartitionDegenerateGrids(t *testing.T) {
	assert.Empty(t, colliders.Partition(tilegrid.NewBitmap(0, 0)))
	assert.Empty(t, colliders.Partition(tilegrid.NewBitmap(-3, 5)))
	assert.Empty(t, colliders.Partition(tilegrid.NewBitmap(5, -3)))
}

func TestPartitionTouchesFarEdges(t *testing.T) {
	g := tilegrid.MustParse(
		"...#",
		"...#",
		"####",
	)
	rects := colliders.Partition(g)
	require.NoError(t, colliders.Verify(g, rects))
	assert.Equal(t, []colliders.Rect{
		{Left: 3, Right: 3, Bottom: 0, Top: 1, Group: 1},
		{Left: 0, Right: 3, Bottom: 2, Top: 2, Group: 1},
	}, rects)
}

func TestPartitionWholeGrid(t *testing.T) {
	g := tilegrid.NewBitmap(5, 3)
	g.Fill(0, 0, 4, 2)
	assert.Equal(t, []colliders.Rect{{Left: 0, Right: 4, Bottom: 0, Top: 2}}, colliders.Partition(g))
}

func TestPartitionOneWideColumn(t *testing.T) {
	g := tilegrid.MustParse(
		".#.",
		".#.",
		".#.",
		".#.",
	)
	assert.Equal(t, []colliders.Rect{{Left: 1, Right: 1, Bottom: 0, Top: 3, Group: 1}}, colliders.Partition(g))
}

func TestPartitionReopensSamePlate(t *testing.T) {
	g := tilegrid.MustParse(
		"##",
		"..",
		"##",
	)
	assert.Equal(t, []colliders.Rect{
		{Left: 0, Right: 1, Bottom: 0, Top: 0, Group: 1},
		{Left: 0, Right: 1, Bottom: 2, Top: 2, Group: 1},
	}, colliders.Partition(g))
}

func TestPartitionGroups(t *testing.T) {
	t.Run("Horizontal", func(t *testing.T) {
		g := tilegrid.MustParse("1122")
		assert.Equal(t, []colliders.Rect{
			{Left: 0, Right: 1, Bottom: 0, Top: 0, Group: 1},
			{Left: 2, Right: 3, Bottom: 0, Top: 0, Group: 2},
		}, colliders.Partition(g))
	})
	t.Run("Vertical", func(t *testing.T) {
		g := tilegrid.MustParse("11", "22", "22")
		assert.Equal(t, []colliders.Rect{
			{Left: 0, Right: 1, Bottom: 0, Top: 0, Group: 1},
			{Left: 0, Right: 1, Bottom: 1, Top: 2, Group: 2},
		}, colliders.Partition(g))
	})
	t.Run("SameGroupMerges", func(t *testing.T) {
		g := tilegrid.MustParse("33", "33")
		assert.Equal(t, []colliders.Rect{{Left: 0, Right: 1, Bottom: 0, Top: 1, Group: 3}}, colliders.Partition(g))
	})
}

func TestRowPlates(t *testing.T) {
	g := tilegrid.MustParse("##.#1122")
	assert.Equal(t, []colliders.Plate{
		{Row: 0, Left: 0, Right: 1, Group: 1},
		{Row: 0, Left: 3, Right: 5, Group: 1},
		{Row: 0, Left: 6, Right: 7, Group: 2},
	}, colliders.RowPlates(g, 0))
	assert.Nil(t, colliders.RowPlates(g, 1))
	assert.Nil(t, colliders.RowPlates(g, -1))
}

func TestRectGeometry(t *testing.T) {
	r := colliders.Rect{Left: 1, Right: 2, Bottom: 3, Top: 3}
	x, y, w, h := r.World(16, 16)
	assert.Equal(t, []float64{16, 48, 32, 16}, []float64{x, y, w, h})

	cx, cy := r.Center(16, 16)
	assert.Equal(t, 32.0, cx)
	assert.Equal(t, 56.0, cy)

	assert.Equal(t, 2, r.Cells())
	assert.True(t, r.Contains(2, 3))
	assert.False(t, r.Contains(3, 3))
	assert.True(t, r.Overlaps(colliders.Rect{Left: 2, Right: 5, Bottom: 0, Top: 3}))
	assert.False(t, r.Overlaps(colliders.Rect{Left: 3, Right: 5, Bottom: 0, Top: 3}))
}

// randomGrid fills a w x h label grid with cells of groups 1..groups at the
// given density.
func randomGrid(r *rand.Rand, w, h, groups int, density float64) *tilegrid.Labels {
	g := tilegrid.NewLabels(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Float64() < density {
				g.Set(x, y, 1+r.Intn(groups))
			}
		}
	}
	return g
}

func TestPartitionProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		w, h := 1+r.Intn(16), 1+r.Intn(16)
		g := randomGrid(r, w, h, 1+r.Intn(3), r.Float64())

		rects := colliders.Partition(g)
		require.NoError(t, colliders.Verify(g, rects), "grid %d (%dx%d)", i, w, h)

		cells := 0
		for _, rc := range rects {
			cells += rc.Cells()
		}
		assert.Equal(t, tilegrid.Count(g), cells)

		for a := range rects {
			for b := a + 1; b < len(rects); b++ {
				assert.False(t, rects[a].Overlaps(rects[b]))
			}
		}

		assert.Equal(t, rects, colliders.Partition(g), "partition must be deterministic")
	}
}
