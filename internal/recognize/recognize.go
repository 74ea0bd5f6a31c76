// Package recognize submits extracted text regions to the Tesseract OCR
// engine. It is a collaborator of the segmentation pipeline, not part of
// it: recognition only starts once the complete region list exists, and
// individual regions are recognized independently of each other.
//
// Tesseract support requires cgo and the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag, RecognizeRegions returns ErrNotEnabled.
package recognize

import "github.com/pagecarve/pagecarve/internal/segment"

// Config controls how regions are recognized.
type Config struct {
	// Language is the Tesseract language code, e.g. "eng" or "deu".
	Language string

	// Workers bounds the number of regions recognized concurrently.
	// Values below 1 are treated as 1.
	Workers int
}

// DefaultConfig returns English recognition with four parallel workers.
func DefaultConfig() Config {
	return Config{Language: "eng", Workers: 4}
}

// Line is one recognized text line with its bounding box in original-image
// coordinates.
type Line struct {
	Text   string         `json:"text"`
	Bounds segment.Bounds `json:"bbox"`
}

// RegionText is the recognition result for a single region. Results keep
// the region order of the pipeline output.
type RegionText struct {
	// Region is the index into the pipeline's region list.
	Region int `json:"region"`

	// Lines are the recognized text lines, top to bottom as reported by
	// the engine.
	Lines []Line `json:"lines"`

	// Confidence is the mean line confidence (0.0 to 1.0), or 0 when the
	// region produced no lines.
	Confidence float64 `json:"confidence"`
}
