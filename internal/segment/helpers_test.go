package segment

import (
	"image"
	"image/color"
	"image/draw"
)

// createTestImage creates a solid-colored RGBA image for tests.
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// fillRect paints a filled rectangle onto img.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// binaryImage builds a binarized-style image from a string pattern where
// '#' is ink (black) and anything else is background (white).
func binaryImage(rows []string) *image.RGBA {
	height := len(rows)
	width := len(rows[0])
	img := createTestImage(width, height, color.White)
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
	}
	return img
}
