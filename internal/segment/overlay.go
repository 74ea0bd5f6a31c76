package segment

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spaces region hues so neighboring regions never share a
// similar color, regardless of how many there are.
const goldenAngle = 137.5

// Overlay draws the detected region boxes onto a copy of the original
// image and returns it. Each region gets a visually distinct color. This
// is a debugging aid; the pipeline result itself is never modified.
func (r *Result) Overlay() *image.RGBA {
	bounds := r.Original.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), r.Original, bounds.Min, draw.Src)

	for i, reg := range r.Regions {
		hue := float64(i) * goldenAngle
		for hue >= 360 {
			hue -= 360
		}
		cr, cg, cb := colorful.Hsv(hue, 0.85, 0.9).RGB255()
		drawRect(out, reg.Bounds, color.RGBA{R: cr, G: cg, B: cb, A: 255})
	}

	return out
}

// drawRect draws a 2px rectangle outline, clamped to the image.
func drawRect(img *image.RGBA, b Bounds, c color.RGBA) {
	bounds := img.Bounds()
	set := func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.SetRGBA(x, y, c)
		}
	}

	for t := 0; t < 2; t++ {
		for x := b.X0; x < b.X1; x++ {
			set(x, b.Y0+t)
			set(x, b.Y1-1-t)
		}
		for y := b.Y0; y < b.Y1; y++ {
			set(b.X0+t, y)
			set(b.X1-1-t, y)
		}
	}
}
