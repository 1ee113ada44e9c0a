package cmd

import (
	"image"
	"image/color"

	"github.com/ianfixes/Illuminator/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// wireframePalette cycles by element depth so nested boxes stay readable.
var wireframePalette = []color.RGBA{
	{R: 200, G: 40, B: 40, A: 255},
	{R: 40, G: 120, B: 200, A: 255},
	{R: 40, G: 160, B: 80, A: 255},
	{R: 200, G: 140, B: 20, A: 255},
	{R: 140, G: 60, B: 180, A: 255},
}

// RenderWireframe draws every element's frame as an outlined box on a blank
// canvas, labeled with its identifier/label (or type name when it has
// neither). The canvas covers the root element's geometry; scale converts
// screen points to image pixels.
func RenderWireframe(root *model.ElementNode, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1.0
	}

	g := root.Geometry
	w := int(g.Width * scale)
	h := int(g.Height * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	// White background
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	root.Walk(func(el *model.ElementNode) {
		if el.Geometry.Width <= 0 || el.Geometry.Height <= 0 {
			return // off-screen or zero-size frame
		}
		drawElementFrame(img, el, g.X, g.Y, scale)
	})

	return img
}

// drawElementFrame draws one element's box and label. originX/originY are
// the root frame origin in screen points; coordinates are shifted so the
// root sits at the canvas origin.
func drawElementFrame(img *image.RGBA, el *model.ElementNode, originX, originY, scale float64) {
	x1 := int((el.Geometry.X - originX) * scale)
	y1 := int((el.Geometry.Y - originY) * scale)
	x2 := x1 + int(el.Geometry.Width*scale)
	y2 := y1 + int(el.Geometry.Height*scale)

	c := wireframePalette[el.Depth%len(wireframePalette)]
	drawBox(img, x1, y1, x2, y2, c)

	label := el.Index()
	if label == "" {
		label = el.Type
	}
	drawLabel(img, label, x1+2, y1+11, c)
}

// drawBox draws a rectangle outline, clamped to the image bounds.
func drawBox(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawLabel draws small text at the given baseline position.
func drawLabel(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(text)
}
