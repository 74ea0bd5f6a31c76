// Package segment implements the text-region detection pipeline for
// scanned document pages.
//
// The pipeline runs five stages in strict sequence over an in-memory pixel
// buffer:
//
//  1. Preprocess: upscale to a working resolution on a white canvas,
//     convert to grayscale, optionally boost contrast and brightness
//  2. Binarize: compute a global Otsu threshold and reduce the image to
//     pure ink/background
//  3. Label: assign connected ink components unique integer labels using a
//     two-pass scan with deferred equivalence resolution
//  4. Aggregate: collect one bounding box per component, drop boxes below
//     a noise area threshold, and merge boxes that lie within a proximity
//     distance of each other
//  5. Extract: map merged boxes back to original-image coordinates with
//     padding and crop each region from the original, non-binarized image
//
// Each stage owns its buffer exclusively; ownership transfers strictly
// downstream and no buffer is written by two stages at once. The pipeline
// is single-threaded and synchronous: once Detect is called it runs to
// completion and is not interruptible.
//
// Output regions are in merge-set order, not reading order. Callers that
// need top-to-bottom ordering must sort by the bounding box's vertical
// origin themselves.
package segment
