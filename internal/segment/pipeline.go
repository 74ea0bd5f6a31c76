package segment

import (
	"fmt"
	"image"

	"github.com/pagecarve/pagecarve/internal/raster"
)

// Config holds the tuning knobs of the detection pipeline. All values have
// working defaults; see DefaultConfig.
type Config struct {
	// TargetDim is the working-resolution ceiling used when computing the
	// preprocessing scale factor.
	TargetDim int

	// MinScale is the minimum upscaling factor. Small scans are enlarged
	// by at least this much before binarization.
	MinScale float64

	// MinArea is the noise threshold: component boxes with an extent
	// product at or below it are discarded.
	MinArea int

	// MergeDistance is the proximity margin in working-resolution pixels
	// within which neighboring boxes are merged into one region.
	MergeDistance int

	// Padding is added on every side when mapping a box back to
	// original-image coordinates for cropping.
	Padding int

	// Contrast and Brightness are optional preprocessing boosts in the
	// range accepted by bild/adjust; zero disables the corresponding step.
	Contrast   float64
	Brightness float64
}

// DefaultConfig returns the pipeline defaults, tuned for scanned document
// pages with sparse handwritten or printed text.
func DefaultConfig() Config {
	return Config{
		TargetDim:     2000,
		MinScale:      2.0,
		MinArea:       400,
		MergeDistance: 30,
		Padding:       10,
		Contrast:      0.15,
	}
}

// Result is the complete output of one pipeline run: the detected regions,
// the untouched original image, and the intermediate values callers need
// to interpret the result.
type Result struct {
	// Regions are the detected text areas in merge-set order.
	Regions []Region

	// Original is the full input image, unmodified. This is the display
	// copy, not the grayscale working copy.
	Original image.Image

	// Scale is the preprocessing scale factor that was applied.
	Scale float64

	// Threshold is the Otsu threshold computed during binarization.
	Threshold int
}

// Detect runs the full detection pipeline on a decoded image and returns
// the extracted regions. The run is synchronous and not interruptible;
// each stage consumes the previous stage's output in strict sequence.
//
// An image with no ink (or nothing surviving the noise filter) yields a
// Result with zero regions, not an error.
func Detect(src image.Image, cfg Config) *Result {
	orig := raster.ToRGBA(src)

	work, scale := Preprocess(orig, cfg)

	hist := Histogram(work)
	threshold := OtsuThreshold(hist)
	Binarize(work, threshold)

	grid := Label(work)

	boxes := AggregateBoxes(grid)
	boxes = FilterNoise(boxes, cfg.MinArea)
	boxes = MergeNearby(boxes, cfg.MergeDistance)

	regions := ExtractRegions(orig, boxes, scale, cfg.Padding)

	return &Result{
		Regions:   regions,
		Original:  orig,
		Scale:     scale,
		Threshold: threshold,
	}
}

// EncodedRegion is a region serialized for output: its bounding box in
// original-image coordinates and the cropped pixels as base64 PNG.
type EncodedRegion struct {
	Bbox         Bounds         `json:"bbox"`
	CroppedImage *raster.Encoded `json:"cropped_image"`
}

// Export contains a fully serialized detection result.
type Export struct {
	Regions   []EncodedRegion `json:"regions"`
	Count     int             `json:"count"`
	FullImage *raster.Encoded `json:"full_image"`
	Scale     float64         `json:"scale"`
	Threshold int             `json:"threshold"`
}

// Export serializes the result for JSON output. Downstream consumers
// expect a complete region set or none: if any region fails to encode the
// whole export fails and nothing is returned.
func (r *Result) Export() (*Export, error) {
	full, err := raster.EncodePNG(r.Original)
	if err != nil {
		return nil, fmt.Errorf("full image: %w", err)
	}

	regions := make([]EncodedRegion, 0, len(r.Regions))
	for i, reg := range r.Regions {
		enc, err := raster.EncodePNG(reg.Image)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
		regions = append(regions, EncodedRegion{Bbox: reg.Bounds, CroppedImage: enc})
	}

	return &Export{
		Regions:   regions,
		Count:     len(regions),
		FullImage: full,
		Scale:     r.Scale,
		Threshold: r.Threshold,
	}, nil
}
