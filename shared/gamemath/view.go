package gamemath

import "math"

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampCamera keeps the camera center inside the level. When the visible
// area is larger than the level along an axis the camera is centered on it.
func ClampCamera(x, y, zoom, screenW, screenH, levelW, levelH float64) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	halfW := screenW / zoom / 2
	halfH := screenH / zoom / 2
	return clampAxis(x, halfW, levelW), clampAxis(y, halfH, levelH)
}

func clampAxis(v, half, size float64) float64 {
	if 2*half >= size {
		return size / 2
	}
	return ClampFloat(v, half, size-half)
}

// FitZoom returns the largest zoom in [minZoom, maxZoom] that shows the whole
// level on screen.
func FitZoom(screenW, screenH, levelW, levelH, minZoom, maxZoom float64) float64 {
	if levelW <= 0 || levelH <= 0 {
		return ClampFloat(1, minZoom, maxZoom)
	}
	return ClampFloat(math.Min(screenW/levelW, screenH/levelH), minZoom, maxZoom)
}

// WorldToScreen maps a world point into screen space for a camera centered
// at (camX, camY).
func WorldToScreen(wx, wy, camX, camY, zoom, screenW, screenH float64) (float64, float64) {
	return (wx-camX)*zoom + screenW/2, (wy-camY)*zoom + screenH/2
}

// Visible reports whether the world box intersects the camera viewport.
func Visible(x, y, w, h, camX, camY, zoom, screenW, screenH float64) bool {
	if zoom <= 0 {
		zoom = 1
	}
	halfW := screenW / zoom / 2
	halfH := screenH / zoom / 2
	return x+w >= camX-halfW && x <= camX+halfW && y+h >= camY-halfH && y <= camY+halfH
}
