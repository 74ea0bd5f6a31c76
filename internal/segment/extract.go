package segment

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Bounds is a rectangular region in original-image pixel coordinates,
// with (X0, Y0) inclusive top-left and (X1, Y1) exclusive bottom-right.
type Bounds struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Region is a detected text area: its bounding box in original-image
// coordinates and the pixel data cropped from the original, non-binarized
// image. Regions are immutable after creation.
type Region struct {
	Bounds Bounds
	Image  *image.NRGBA
}

// toOriginal maps a working-resolution box back to original-image
// coordinates: the scale applied by the preprocessor is undone with
// floor/ceil rounding that never shrinks the box, padding is added on
// every side, and the result is clamped to the original image bounds.
func (b Box) toOriginal(scale float64, padding, origW, origH int) Bounds {
	x0 := int(math.Floor(float64(b.MinX)/scale)) - padding
	y0 := int(math.Floor(float64(b.MinY)/scale)) - padding
	x1 := int(math.Ceil(float64(b.MaxX)/scale)) + padding
	y1 := int(math.Ceil(float64(b.MaxY)/scale)) + padding

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > origW {
		x1 = origW
	}
	if y1 > origH {
		y1 = origH
	}
	return Bounds{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// ExtractRegions crops one region per merged box from the original image.
// Boxes are translated back to original coordinates using the scale factor
// reported by Preprocess. Region order follows the box order, which is not
// guaranteed to be reading order.
func ExtractRegions(orig image.Image, boxes []Box, scale float64, padding int) []Region {
	origBounds := orig.Bounds()
	origW := origBounds.Dx()
	origH := origBounds.Dy()

	regions := make([]Region, 0, len(boxes))
	for _, b := range boxes {
		rb := b.toOriginal(scale, padding, origW, origH)
		crop := imaging.Crop(orig, image.Rect(
			rb.X0+origBounds.Min.X,
			rb.Y0+origBounds.Min.Y,
			rb.X1+origBounds.Min.X,
			rb.Y1+origBounds.Min.Y,
		))
		regions = append(regions, Region{Bounds: rb, Image: crop})
	}
	return regions
}
