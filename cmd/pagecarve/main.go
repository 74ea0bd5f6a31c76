package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagecarve/pagecarve/internal/config"
	"github.com/pagecarve/pagecarve/internal/logging"
	"github.com/pagecarve/pagecarve/internal/raster"
	"github.com/pagecarve/pagecarve/internal/recognize"
	"github.com/pagecarve/pagecarve/internal/segment"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pagecarve %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	fs := flag.NewFlagSet("pagecarve", flag.ExitOnError)
	page := fs.Int("page", 0, "page index for PDF input (0-based)")
	outDir := fs.String("out", "", "directory for region crops and overlay (optional)")
	jsonOut := fs.String("json", "", "path for the JSON result (default stdout)")
	overlay := fs.Bool("overlay", false, "also write an overlay image with region boxes")
	ocr := fs.Bool("ocr", false, "recognize text in each region (requires -tags ocr build)")
	lang := fs.String("lang", "", "OCR language code (overrides PAGECARVE_OCR_LANGUAGE)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "pagecarve - text region detection for scanned documents")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: pagecarve [options] <image.png|scan.pdf>")
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Configuration is read from PAGECARVE_* environment variables")
		fmt.Fprintln(os.Stderr, "or a .env file in the working directory.")
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	logger := logging.NewLogger("pagecarve")
	if err := run(fs.Arg(0), *page, *outDir, *jsonOut, *overlay, *ocr, *lang, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(input string, page int, outDir, jsonOut string, overlay, ocr bool, lang string, logger *logging.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if lang != "" {
		cfg.Recognition.Language = lang
	}

	cache := raster.NewCache()
	src, err := raster.Open(cache, input)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx := context.Background()
	img, err := src.Render(ctx, page, cfg.RenderScale)
	if err != nil {
		return err
	}

	result := segment.Detect(img, cfg.Pipeline)
	logger.Info("detection complete",
		"regions", len(result.Regions),
		"threshold", result.Threshold,
		"scale", result.Scale)

	export, err := result.Export()
	if err != nil {
		return err
	}

	var texts []recognize.RegionText
	if ocr {
		texts, err = recognize.RecognizeRegions(ctx, result.Regions, cfg.Recognition)
		if err != nil {
			return err
		}
	}

	if outDir != "" {
		if err := writeArtifacts(result, outDir, overlay); err != nil {
			return err
		}
	}

	out := struct {
		*segment.Export
		Text []recognize.RegionText `json:"text,omitempty"`
	}{export, texts}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if jsonOut == "" {
		fmt.Println(string(payload))
		return nil
	}
	return os.WriteFile(jsonOut, payload, 0644)
}

// writeArtifacts saves each region crop, and optionally the overlay, as
// PNG files in dir.
func writeArtifacts(result *segment.Result, dir string, overlay bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	for i, reg := range result.Regions {
		path := filepath.Join(dir, fmt.Sprintf("region_%03d.png", i))
		if err := raster.SavePNG(reg.Image, path); err != nil {
			return err
		}
	}
	if overlay {
		return raster.SavePNG(result.Overlay(), filepath.Join(dir, "overlay.png"))
	}
	return nil
}
