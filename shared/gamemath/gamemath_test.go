package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlopeSurfaceY(t *testing.T) {
	tests := []struct {
		name      string
		slopeType string
		x         float64
		want      float64
	}{
		{"up right at left edge is bottom", SlopeUpRight, 0, 16},
		{"up right at right edge is top", SlopeUpRight, 16, 0},
		{"up right midway", SlopeUpRight, 8, 8},
		{"up left at left edge is top", SlopeUpLeft, 0, 0},
		{"up left at right edge is bottom", SlopeUpLeft, 16, 16},
		{"clamped past the box", SlopeUpRight, 40, 0},
		{"unknown type is flat", "steep", 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SlopeSurfaceY(0, 0, 16, 16, tt.slopeType, tt.x), 1e-9)
		})
	}
	assert.Equal(t, 5.0, SlopeSurfaceY(0, 5, 0, 16, SlopeUpRight, 3))
}

func TestClampCamera(t *testing.T) {
	// 320x180 screen over a 1000x500 level at zoom 1
	x, y := ClampCamera(0, 0, 1, 320, 180, 1000, 500)
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 90.0, y)

	x, y = ClampCamera(2000, 2000, 1, 320, 180, 1000, 500)
	assert.Equal(t, 840.0, x)
	assert.Equal(t, 410.0, y)

	// zoomed out far enough to see the whole level: centered
	x, y = ClampCamera(10, 10, 0.25, 320, 180, 1000, 500)
	assert.Equal(t, 500.0, x)
	assert.Equal(t, 250.0, y)

	x, y = ClampCamera(500, 250, 2, 320, 180, 1000, 500)
	assert.Equal(t, 500.0, x)
	assert.Equal(t, 250.0, y)
}

func TestFitZoom(t *testing.T) {
	assert.Equal(t, 0.32, FitZoom(320, 180, 1000, 500, 0.25, 4))
	assert.Equal(t, 4.0, FitZoom(320, 180, 10, 10, 0.25, 4))
	assert.Equal(t, 0.25, FitZoom(320, 180, 10000, 10000, 0.25, 4))
	assert.Equal(t, 1.0, FitZoom(320, 180, 0, 0, 0.25, 4))
}

func TestWorldToScreen(t *testing.T) {
	sx, sy := WorldToScreen(100, 50, 100, 50, 2, 320, 180)
	assert.Equal(t, 160.0, sx)
	assert.Equal(t, 90.0, sy)

	sx, sy = WorldToScreen(110, 40, 100, 50, 2, 320, 180)
	assert.Equal(t, 180.0, sx)
	assert.Equal(t, 70.0, sy)
}

func TestVisible(t *testing.T) {
	assert.True(t, Visible(0, 0, 16, 16, 160, 90, 1, 320, 180))
	assert.False(t, Visible(400, 0, 16, 16, 160, 90, 1, 320, 180))
	assert.True(t, Visible(400, 0, 16, 16, 160, 90, 0.5, 320, 180))
	assert.False(t, Visible(0, 200, 16, 16, 160, 90, 1, 320, 180))
}

func TestKnownSlope(t *testing.T) {
	assert.True(t, KnownSlope(SlopeUpRight))
	assert.True(t, KnownSlope(SlopeUpLeft))
	assert.False(t, KnownSlope(""))
	assert.False(t, KnownSlope("spiral"))
}
