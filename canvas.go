package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// RenderTarget receives stroke geometry. Every call overwrites the covered
// pixels with the given color, alpha included, instead of blending.
type RenderTarget interface {
	StrokePath(points []Point, c color.NRGBA, width float64)
	StrokeEllipse(r Rect, c color.NRGBA, width float64)
	StrokeRect(r Rect, c color.NRGBA, width float64)
}

// Canvas is a transparent raster layer that strokes are rendered onto.
// Each primitive is traced on a scratch context and turned into a coverage
// mask; only the covered pixels of the layer are replaced.
type Canvas struct {
	layer   *image.RGBA
	scratch *gg.Context
}

var _ RenderTarget = (*Canvas)(nil)

func NewCanvas(size Size) *Canvas {
	w, h := pixelSize(size)
	return &Canvas{
		layer:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scratch: gg.NewContext(w, h),
	}
}

func pixelSize(size Size) (int, int) {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (c *Canvas) Image() *image.RGBA {
	return c.layer
}

func (c *Canvas) Clear() {
	draw.Draw(c.layer, c.layer.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) StrokePath(points []Point, col color.NRGBA, width float64) {
	if len(points) == 0 {
		return
	}
	c.replace(col, width, func(dc *gg.Context) {
		dc.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			dc.LineTo(p.X, p.Y)
		}
	})
}

func (c *Canvas) StrokeEllipse(r Rect, col color.NRGBA, width float64) {
	c.replace(col, width, func(dc *gg.Context) {
		dc.DrawEllipse(r.X+r.Width/2, r.Y+r.Height/2, r.Width/2, r.Height/2)
	})
}

func (c *Canvas) StrokeRect(r Rect, col color.NRGBA, width float64) {
	c.replace(col, width, func(dc *gg.Context) {
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	})
}

func (c *Canvas) replace(col color.NRGBA, width float64, trace func(dc *gg.Context)) {
	dc := c.scratch
	dc.ClearPath()
	dc.SetColor(color.Transparent)
	dc.Clear()
	dc.SetColor(color.White)
	dc.SetLineWidth(width)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	trace(dc)
	dc.Stroke()

	c.blendCovered(dc.AsMask(), col)
}

// blendCovered sets every covered pixel to lerp(dst, col, coverage).
// Pixels outside the mask keep their value.
func (c *Canvas) blendCovered(mask *image.Alpha, col color.NRGBA) {
	r, g, b, a := col.RGBA()
	src := [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
	bounds := mask.Bounds().Intersect(c.layer.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			i := c.layer.PixOffset(x, y)
			px := c.layer.Pix[i : i+4 : i+4]
			for k := range px {
				px[k] = uint8((src[k]*m + uint32(px[k])*(255-m) + 127) / 255)
			}
		}
	}
}

// Flatten composites the layer over an opaque background.
func (c *Canvas) Flatten(background color.Color) *image.RGBA {
	out := image.NewRGBA(c.layer.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), c.layer, image.Point{}, draw.Over)
	return out
}

// renderFrame rasterizes the committed strokes of f over background.
func renderFrame(f Frame, background color.Color) *image.RGBA {
	c := NewCanvas(f.Size)
	for _, s := range f.Visible() {
		s.Render(c)
	}
	return c.Flatten(background)
}

func scaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
