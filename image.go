package collidetree

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"golang.org/x/image/bmp"
)

var (
	regionColor = color.RGBA{255, 0, 0, 255}
	itemColor   = color.RGBA{0, 255, 0, 255}
)

// Image writes t as a BMP whose longer side is size pixels. Node regions
// are drawn in red and item bounds in green, scaled to fit. Anything outside
// the region is clipped.
func (t *Tree[I, T, L]) Image(w io.Writer, size int) error {
	if size < 1 {
		return fmt.Errorf("collidetree: image size %d is not positive", size)
	}
	r := t.region
	long := max(float64(r.W), float64(r.H))
	scale := 0.
	if long > 0 {
		scale = float64(size-1) / long
	}
	px := func(v, origin T) int {
		return int((float64(v) - float64(origin)) * scale)
	}

	frame := image.NewRGBA(image.Rect(0, 0, px(r.X+r.W, r.X)+1, px(r.Y+r.H, r.Y)+1))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	rect := func(b BoundingBox[T], col color.Color) {
		b = b.Clamp(r)
		x1, y1 := px(b.X, r.X), px(b.Y, r.Y)
		x2, y2 := px(b.X+b.W, r.X), px(b.Y+b.H, r.Y)
		for x := x1; x <= x2; x++ {
			frame.Set(x, y1, col)
			frame.Set(x, y2, col)
		}
		for y := y1; y <= y2; y++ {
			frame.Set(x1, y, col)
			frame.Set(x2, y, col)
		}
	}

	t.walk(0, func(n *Tree[I, T, L], _ int) {
		rect(n.region, regionColor)
	})
	t.walk(0, func(n *Tree[I, T, L], _ int) {
		for _, e := range n.top {
			rect(e.bounds, itemColor)
		}
	})

	return bmp.Encode(w, frame)
}
