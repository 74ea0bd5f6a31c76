package segment

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"

	"github.com/pagecarve/pagecarve/internal/raster"
)

// Preprocess normalizes an input image to the working resolution used for
// detection and returns the working image together with the scale factor
// applied. The scale factor is needed later to map detected boxes back to
// original-image coordinates.
//
// The scale is max(minScale, min(targetDim/width, targetDim/height)):
// small scans are upscaled to at least minScale so that thin strokes
// survive binarization. The scaled image is drawn onto a white canvas, so
// transparent source pixels become background rather than ink.
//
// Grayscale conversion uses ITU-R BT.601 luminance weights
// (0.299*R + 0.587*G + 0.114*B) and writes the luminance into all three
// color channels in place.
func Preprocess(src image.Image, cfg Config) (*image.RGBA, float64) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	scale := min(float64(cfg.TargetDim)/float64(width), float64(cfg.TargetDim)/float64(height))
	if scale < cfg.MinScale {
		scale = cfg.MinScale
	}

	workW := int(float64(width) * scale)
	workH := int(float64(height) * scale)

	canvas := imaging.New(workW, workH, color.White)
	scaled := imaging.Resize(src, workW, workH, imaging.Lanczos)
	canvas = imaging.Overlay(canvas, scaled, image.Point{}, 1.0)

	work := raster.ToRGBA(canvas)
	grayscaleInPlace(work)

	if cfg.Contrast != 0 {
		work = adjust.Contrast(work, cfg.Contrast)
	}
	if cfg.Brightness != 0 {
		work = adjust.Brightness(work, cfg.Brightness)
	}

	return work, scale
}

// grayscaleInPlace replaces every pixel's color channels with its BT.601
// luminance. Alpha is forced opaque.
func grayscaleInPlace(img *image.RGBA) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		lum := uint8(0.299*float64(pix[i]) + 0.587*float64(pix[i+1]) + 0.114*float64(pix[i+2]))
		pix[i] = lum
		pix[i+1] = lum
		pix[i+2] = lum
		pix[i+3] = 255
	}
}
