package gamemath

// Slope type tags as stored on TMX tiles and resolv ramp objects.
const (
	SlopeUpRight = "45_up_right"
	SlopeUpLeft  = "45_up_left"
)

// SlopeSurfaceY returns the ramp surface height at world x. The ramp box is
// top-left anchored at (rampX, rampY). Unknown slope types are flat at the top
// of the box.
func SlopeSurfaceY(rampX, rampY, rampW, rampH float64, slopeType string, x float64) float64 {
	if rampW <= 0 {
		return rampY
	}
	slope := ClampFloat(x-rampX, 0, rampW) / rampW

	switch slopeType {
	case SlopeUpRight:
		return rampY + rampH*(1-slope)
	case SlopeUpLeft:
		return rampY + rampH*slope
	}
	return rampY
}

// KnownSlope reports whether slopeType is a ramp shape SlopeSurfaceY can
// describe. Level geometry with another slope type is treated as a solid box.
func KnownSlope(slopeType string) bool {
	return slopeType == SlopeUpRight || slopeType == SlopeUpLeft
}
