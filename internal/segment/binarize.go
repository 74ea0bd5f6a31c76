package segment

import "image"

// histogramBins is the number of luminance bins; one per 8-bit level.
const histogramBins = 256

// Histogram counts the luminance distribution of a grayscale image. The
// image is expected to have equal color channels, so the red channel is
// read directly.
func Histogram(img *image.RGBA) [histogramBins]int {
	var hist [histogramBins]int
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		hist[pix[i]]++
	}
	return hist
}

// OtsuThreshold computes the luminance threshold that maximizes the
// between-class variance of the histogram (Otsu's method).
//
// The scan walks candidate thresholds from 0 to 255, maintaining the
// cumulative background weight and sum. Candidates with an empty background
// class are skipped; the scan stops once the foreground class is empty.
// Ties keep the first (lowest) maximizing threshold, and a uniform image
// (single occupied bin) yields 0.
func OtsuThreshold(hist [histogramBins]int) int {
	total := 0
	sum := 0.0
	for i, count := range hist {
		total += count
		sum += float64(i) * float64(count)
	}

	threshold := 0
	maxVariance := 0.0
	wB := 0
	sumB := 0.0

	for t := 0; t < histogramBins; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])

		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)
		variance := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)

		if variance > maxVariance {
			maxVariance = variance
			threshold = t
		}
	}

	return threshold
}

// Binarize reduces a grayscale image to two levels in place: pixels with
// luminance below the threshold become pure black (ink), everything else
// pure white (background), uniformly across all three color channels.
//
// With threshold 0 no pixel classifies as ink, which is the correct
// degenerate behavior for an all-uniform image.
func Binarize(img *image.RGBA, threshold int) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		var v uint8 = 255
		if int(pix[i]) < threshold {
			v = 0
		}
		pix[i] = v
		pix[i+1] = v
		pix[i+2] = v
		pix[i+3] = 255
	}
}
