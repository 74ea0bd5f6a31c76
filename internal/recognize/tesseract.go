//go:build ocr

package recognize

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/pagecarve/pagecarve/internal/segment"
)

// RecognizeRegions runs OCR over every region concurrently and returns one
// result per region, in region order. Recognition must not begin before
// the full region list exists; callers pass the completed pipeline output.
//
// Each region gets its own Tesseract client since clients are not safe for
// concurrent use. Line bounding boxes are translated back into
// original-image coordinates using the region's bounding box origin.
func RecognizeRegions(ctx context.Context, regions []segment.Region, cfg Config) ([]RegionText, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]RegionText, len(regions))
	errs := make([]error, len(regions))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			rt, err := recognizeOne(regions[i], i, cfg.Language)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = *rt
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
	}
	return results, nil
}

func recognizeOne(region segment.Region, index int, language string) (*RegionText, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, region.Image); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	lines := make([]Line, 0, len(boxes))
	confidenceSum := 0.0
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		lines = append(lines, Line{
			Text: box.Word,
			Bounds: segment.Bounds{
				X0: box.Box.Min.X + region.Bounds.X0,
				Y0: box.Box.Min.Y + region.Bounds.Y0,
				X1: box.Box.Max.X + region.Bounds.X0,
				Y1: box.Box.Max.Y + region.Bounds.Y0,
			},
		})
		confidenceSum += float64(box.Confidence) / 100.0
	}

	confidence := 0.0
	if len(lines) > 0 {
		confidence = confidenceSum / float64(len(lines))
	}

	return &RegionText{Region: index, Lines: lines, Confidence: confidence}, nil
}
