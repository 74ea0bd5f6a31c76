// Package raster handles the boundary between encoded images and the raw
// pixel buffers the segmentation pipeline operates on.
//
// Decoding is the single suspension point in the system: the pipeline never
// starts on an input that failed to decode, and it never observes a
// partially decoded buffer. The package provides:
//
//   - A thread-safe decode cache for PNG, JPEG, and GIF files
//   - Conversion of arbitrary image.Image values into *image.RGBA buffers
//     (row-major, 4 channels per pixel, top-left origin)
//   - PNG encoding of results, both to base64 payloads and to disk
//   - A PageRasterizer that turns a page of a PDF document into a raster
//     image at a chosen render scale
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward.
package raster
