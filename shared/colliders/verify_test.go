package colliders_test

import (
	"testing"

	"github.com/automoto/doomerang-geom/shared/colliders"
	"github.com/automoto/doomerang-geom/shared/tilegrid"
	"github.com/stretchr/testify/assert"
)

func TestVerifyFailures(t *testing.T) {
	g := tilegrid.MustParse(
		"11.",
		"122",
	)
	cases := []struct {
		name  string
		rects []colliders.Rect
		err   error
	}{
		{"OutOfBounds", []colliders.Rect{{Left: 0, Right: 3, Bottom: 0, Top: 0, Group: 1}}, colliders.ErrOutOfBounds},
		{"Inverted", []colliders.Rect{{Left: 1, Right: 0, Bottom: 0, Top: 0, Group: 1}}, colliders.ErrOutOfBounds},
		{"ExtraCell", []colliders.Rect{{Left: 0, Right: 2, Bottom: 0, Top: 0, Group: 1}}, colliders.ErrExtraCell},
		{"Misgrouped", []colliders.Rect{{Left: 0, Right: 2, Bottom: 1, Top: 1, Group: 1}}, colliders.ErrMisgrouped},
		{"Overlap", []colliders.Rect{
			{Left: 0, Right: 1, Bottom: 0, Top: 0, Group: 1},
			{Left: 0, Right: 0, Bottom: 0, Top: 1, Group: 1},
		}, colliders.ErrOverlap},
		{"Uncovered", []colliders.Rect{
			{Left: 0, Right: 1, Bottom: 0, Top: 0, Group: 1},
			{Left: 0, Right: 0, Bottom: 1, Top: 1, Group: 1},
		}, colliders.ErrUncovered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, colliders.Verify(g, tc.rects), tc.err)
		})
	}
}

func TestVerifyEmpty(t *testing.T) {
	assert.NoError(t, colliders.Verify(tilegrid.NewBitmap(3, 3), nil))
}
