package occluders_test

import (
	"testing"

	"github.com/automoto/doomerang-geom/shared/occluders"
	"github.com/automoto/doomerang-geom/shared/tilegrid"
	"github.com/stretchr/testify/assert"
)

func TestVerifyFailures(t *testing.T) {
	row := tilegrid.NewBitmap(4, 4)
	row.Fill(0, 0, 3, 0)
	good := occluders.Build(row, tile, tile)

	block := tilegrid.NewBitmap(2, 2)
	block.Fill(0, 0, 1, 1)

	cases := []struct {
		name     string
		grid     tilegrid.Grid
		segments []occluders.Segment
		err      error
	}{
		{"Missing", row, good[:3], occluders.ErrUncoveredSide},
		{"Duplicate", row, append(append([]occluders.Segment{}, good...), good[0]), occluders.ErrDoubleCover},
		{"Split", row, []occluders.Segment{
			good[0],
			seg(0, 16, 32, 16, tilegrid.North),
			seg(32, 16, 64, 16, tilegrid.North),
			good[2], good[3],
		}, occluders.ErrNotMaximal},
		{"Interior", block, append(occluders.Build(block, tile, tile), seg(16, 0, 16, 16, tilegrid.West)), occluders.ErrInteriorSide},
		{"Stray", tilegrid.NewBitmap(2, 2), []occluders.Segment{seg(0, 0, 0, 16, tilegrid.West)}, occluders.ErrStraySide},
		{"Diagonal", row, []occluders.Segment{seg(0, 0, 16, 16, tilegrid.West)}, occluders.ErrNotAxisAligned},
		{"WrongDirection", row, []occluders.Segment{seg(0, 0, 16, 0, tilegrid.West)}, occluders.ErrNotAxisAligned},
		{"OffLattice", row, []occluders.Segment{seg(3, 0, 3, 16, tilegrid.West)}, occluders.ErrOffLattice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, occluders.Verify(tc.grid, tc.segments, tile, tile), tc.err)
		})
	}
}
