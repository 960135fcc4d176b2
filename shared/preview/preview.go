// Package preview rasterizes extracted level geometry to an image so merged
// colliders and occluders can be inspected without running the game.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/automoto/doomerang-geom/shared/gamemath"
	"github.com/automoto/doomerang-geom/shared/leveldata"
	"github.com/automoto/doomerang-geom/shared/occluders"
	"golang.org/x/image/vector"
)

// Options controls Render.
type Options struct {
	Scale      float64 // pixels per world unit
	LineWidth  float64 // occluder stroke width in pixels
	Background color.RGBA
	Solid      color.RGBA
	Slope      color.RGBA
	Occluder   color.RGBA
}

// DefaultOptions draws at 2x with the debug overlay palette.
func DefaultOptions() Options {
	return Options{
		Scale:      2,
		LineWidth:  2,
		Background: color.RGBA{R: 20, G: 20, B: 28, A: 255},
		Solid:      color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Slope:      color.RGBA{R: 255, G: 140, B: 0, A: 255},
		Occluder:   color.RGBA{R: 255, G: 255, B: 0, A: 255},
	}
}

type point struct{ x, y float64 }

type canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	scale float64
}

// Render draws the level's solid rects, slope tiles and occluder segments.
func Render(data *leveldata.CollisionData, opts Options) *image.RGBA {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	w := int(math.Ceil(float64(data.MapWidth) * opts.Scale))
	h := int(math.Ceil(float64(data.MapHeight) * opts.Scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	c := &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		z:     vector.NewRasterizer(w, h),
		scale: opts.Scale,
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	for _, r := range data.SolidRects {
		switch r.SlopeType {
		case gamemath.SlopeUpRight:
			c.fill(opts.Slope, point{r.X, r.Y + r.H}, point{r.X + r.W, r.Y + r.H}, point{r.X + r.W, r.Y})
		case gamemath.SlopeUpLeft:
			c.fill(opts.Slope, point{r.X, r.Y}, point{r.X, r.Y + r.H}, point{r.X + r.W, r.Y + r.H})
		default:
			// unknown slope types collide as solid boxes
			c.box(opts.Solid, r.X, r.Y, r.X+r.W, r.Y+r.H)
		}
	}

	half := opts.LineWidth / 2 / opts.Scale
	for _, s := range data.Occluders {
		c.segment(opts.Occluder, s, half)
	}
	return c.img
}

func (c *canvas) segment(col color.RGBA, s occluders.Segment, half float64) {
	x0, x1 := math.Min(s.StartX, s.EndX), math.Max(s.StartX, s.EndX)
	y0, y1 := math.Min(s.StartY, s.EndY), math.Max(s.StartY, s.EndY)
	if s.Vertical() {
		c.box(col, x0-half, y0, x1+half, y1)
		return
	}
	c.box(col, x0, y0-half, x1, y1+half)
}

func (c *canvas) box(col color.RGBA, x0, y0, x1, y1 float64) {
	c.fill(col, point{x0, y0}, point{x1, y0}, point{x1, y1}, point{x0, y1})
}

// fill rasterizes a closed polygon given in world units. Points are clamped to
// the image so strokes on the map border stay inside the rasterizer bounds.
func (c *canvas) fill(col color.RGBA, pts ...point) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	for i, p := range pts {
		x := float32(clamp(p.x*c.scale, 0, float64(b.Dx())))
		y := float32(clamp(p.y*c.scale, 0, float64(b.Dy())))
		if i == 0 {
			c.z.MoveTo(x, y)
			continue
		}
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
