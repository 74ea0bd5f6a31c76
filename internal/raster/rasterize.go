package raster

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PageRasterizer converts one page of a paginated document (or a plain
// image file, treated as a single page) into a raw pixel buffer. It is an
// external collaborator of the segmentation core: the pipeline consumes its
// output and never touches the document format itself.
type PageRasterizer interface {
	// PageCount reports the number of pages available.
	PageCount() int

	// Render rasterizes the page at the given index (0-based) at the given
	// render scale, where 1.0 is the document's native resolution.
	Render(ctx context.Context, page int, scale float64) (image.Image, error)

	// Close releases resources held by the rasterizer.
	Close() error
}

// PDFRasterizer renders PDF pages using MuPDF via go-fitz.
type PDFRasterizer struct {
	doc *fitz.Document
}

// OpenPDF opens a PDF document for page rendering.
func OpenPDF(path string) (*PDFRasterizer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	if doc.NumPage() == 0 {
		doc.Close()
		return nil, fmt.Errorf("PDF has no pages")
	}
	return &PDFRasterizer{doc: doc}, nil
}

// PageCount reports the number of pages in the document.
func (r *PDFRasterizer) PageCount() int {
	return r.doc.NumPage()
}

// Render rasterizes a single page. MuPDF's native resolution is 72 DPI, so
// a scale of 2.0 renders at 144 DPI.
func (r *PDFRasterizer) Render(ctx context.Context, page int, scale float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page < 0 || page >= r.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range [0,%d)", page, r.doc.NumPage())
	}
	img, err := r.doc.ImageDPI(page, 72.0*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page, err)
	}
	return img, nil
}

// Close releases the underlying document.
func (r *PDFRasterizer) Close() error {
	if r.doc != nil {
		r.doc.Close()
		r.doc = nil
	}
	return nil
}

// FileRasterizer treats a single raster image file as a one-page document.
// The render scale is ignored; the decoded image is returned at its native
// resolution and the pipeline's own preprocessor handles upscaling.
type FileRasterizer struct {
	img image.Image
}

// OpenImageFile loads a PNG, JPEG, or GIF file as a one-page document.
func OpenImageFile(cache *Cache, path string) (*FileRasterizer, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &FileRasterizer{img: img}, nil
}

// PageCount always reports 1.
func (r *FileRasterizer) PageCount() int { return 1 }

// Render returns the decoded image for page 0.
func (r *FileRasterizer) Render(ctx context.Context, page int, scale float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page != 0 {
		return nil, fmt.Errorf("page %d out of range [0,1)", page)
	}
	return r.img, nil
}

// Close is a no-op for image files.
func (r *FileRasterizer) Close() error { return nil }

// Open picks a rasterizer for path by extension: ".pdf" gets the MuPDF
// rasterizer, everything else the single-image one.
func Open(cache *Cache, path string) (PageRasterizer, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return OpenPDF(path)
	}
	return OpenImageFile(cache, path)
}
