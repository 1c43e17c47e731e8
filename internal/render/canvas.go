package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so that four segments approximate a circle.
const kappa = 0.5522847498307936

// coverageThreshold is the mask alpha at which a pixel counts as inside a
// shape. Edges are aliased: a pixel is either painted fully or not at all.
const coverageThreshold = 0x80

// Canvas is an offscreen RGBA surface, fully transparent when created.
// Every primitive composites with Porter-Duff over, so later shapes cover
// earlier ones where they overlap.
type Canvas struct {
	img    *image.RGBA
	mask   *image.Alpha
	filler *vector.Rasterizer
	liner  *raster.Rasterizer
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		mask:   image.NewAlpha(image.Rect(0, 0, width, height)),
		filler: vector.NewRasterizer(width, height),
		liner:  raster.NewRasterizer(width, height),
	}
}

// Size returns the canvas width and height in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// FillRoundedRect fills r with corners replaced by circular arcs of radius.
func (c *Canvas) FillRoundedRect(r Rect, radius float64, col color.RGBA) {
	r = r.Normalize()
	if r.Empty() {
		return
	}
	rad := clampRadius(r, radius)
	k := rad * kappa
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	z := c.beginFill()
	z.MoveTo(f32(x0+rad), f32(y0))
	z.LineTo(f32(x1-rad), f32(y0))
	z.CubeTo(f32(x1-rad+k), f32(y0), f32(x1), f32(y0+rad-k), f32(x1), f32(y0+rad))
	z.LineTo(f32(x1), f32(y1-rad))
	z.CubeTo(f32(x1), f32(y1-rad+k), f32(x1-rad+k), f32(y1), f32(x1-rad), f32(y1))
	z.LineTo(f32(x0+rad), f32(y1))
	z.CubeTo(f32(x0+rad-k), f32(y1), f32(x0), f32(y1-rad+k), f32(x0), f32(y1-rad))
	z.LineTo(f32(x0), f32(y0+rad))
	z.CubeTo(f32(x0), f32(y0+rad-k), f32(x0+rad-k), f32(y0), f32(x0+rad), f32(y0))
	z.ClosePath()
	c.endFill(col)
}

// FillCircle fills the disc of the given radius around center.
func (c *Canvas) FillCircle(center Point, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	cx, cy, rad := center.X, center.Y, radius
	k := rad * kappa

	z := c.beginFill()
	z.MoveTo(f32(cx+rad), f32(cy))
	z.CubeTo(f32(cx+rad), f32(cy+k), f32(cx+k), f32(cy+rad), f32(cx), f32(cy+rad))
	z.CubeTo(f32(cx-k), f32(cy+rad), f32(cx-rad), f32(cy+k), f32(cx-rad), f32(cy))
	z.CubeTo(f32(cx-rad), f32(cy-k), f32(cx-k), f32(cy-rad), f32(cx), f32(cy-rad))
	z.CubeTo(f32(cx+k), f32(cy-rad), f32(cx+rad), f32(cy-k), f32(cx+rad), f32(cy))
	z.ClosePath()
	c.endFill(col)
}

// StrokeLine draws a straight segment of the given width. The ends are cut
// square at the endpoints; nothing extends past them.
func (c *Canvas) StrokeLine(from, to Point, width float64, col color.RGBA) {
	if width <= 0 || from == to {
		return
	}
	var path raster.Path
	path.Start(toFixed(from))
	path.Add1(toFixed(to))

	c.liner.Clear()
	c.liner.UseNonZeroWinding = true
	raster.Stroke(c.liner, path, fixed.Int26_6(math.Round(width*64)), raster.ButtCapper, raster.BevelJoiner)

	c.clearMask()
	c.liner.Rasterize(raster.NewAlphaOverPainter(c.mask))
	c.paintMask(col)
}

func (c *Canvas) beginFill() *vector.Rasterizer {
	w, h := c.Size()
	c.filler.Reset(w, h)
	return c.filler
}

func (c *Canvas) endFill(col color.RGBA) {
	c.clearMask()
	c.filler.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})
	c.paintMask(col)
}

func (c *Canvas) clearMask() {
	clear(c.mask.Pix)
}

// paintMask snaps the coverage in c.mask to on/off and paints col through it.
func (c *Canvas) paintMask(col color.RGBA) {
	for i, a := range c.mask.Pix {
		if a >= coverageThreshold {
			c.mask.Pix[i] = 0xFF
		} else {
			c.mask.Pix[i] = 0
		}
	}
	draw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, c.mask, image.Point{}, draw.Over)
}

func toFixed(p Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

func f32(v float64) float32 { return float32(v) }
