//go:build !ocr

package recognize

import (
	"context"
	"errors"

	"github.com/pagecarve/pagecarve/internal/segment"
)

// ErrNotEnabled is returned when recognition is requested but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// RecognizeRegions is the stub used without the "ocr" build tag; it always
// returns ErrNotEnabled.
func RecognizeRegions(ctx context.Context, regions []segment.Region, cfg Config) ([]RegionText, error) {
	return nil, ErrNotEnabled
}
