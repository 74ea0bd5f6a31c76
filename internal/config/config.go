// Package config loads runtime configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pagecarve/pagecarve/internal/recognize"
	"github.com/pagecarve/pagecarve/internal/segment"
)

// Config is the full runtime configuration of the tool.
type Config struct {
	// Pipeline is the detection pipeline tuning.
	Pipeline segment.Config

	// Recognition controls the optional OCR pass.
	Recognition recognize.Config

	// RenderScale is the rasterization scale for PDF pages.
	RenderScale float64
}

// Load builds the configuration from the environment. A .env file in the
// working directory is honored if present; real environment variables take
// precedence over it. Unset variables fall back to the pipeline defaults.
//
// Recognized variables:
//
//	PAGECARVE_TARGET_DIM      working-resolution ceiling (pixels)
//	PAGECARVE_MIN_SCALE       minimum preprocessing upscale factor
//	PAGECARVE_MIN_AREA        noise-filter area threshold (px²)
//	PAGECARVE_MERGE_DISTANCE  box merge proximity (pixels)
//	PAGECARVE_PADDING         region crop padding (pixels)
//	PAGECARVE_CONTRAST        preprocessing contrast boost
//	PAGECARVE_BRIGHTNESS      preprocessing brightness boost
//	PAGECARVE_OCR_LANGUAGE    Tesseract language code
//	PAGECARVE_OCR_WORKERS     concurrent recognition workers
//	PAGECARVE_RENDER_SCALE    PDF page render scale
func Load() (*Config, error) {
	// Missing .env is fine; only report parse failures.
	_ = godotenv.Load()

	cfg := &Config{
		Pipeline:    segment.DefaultConfig(),
		Recognition: recognize.DefaultConfig(),
		RenderScale: 2.0,
	}

	var err error
	if cfg.Pipeline.TargetDim, err = intEnv("PAGECARVE_TARGET_DIM", cfg.Pipeline.TargetDim); err != nil {
		return nil, err
	}
	if cfg.Pipeline.MinScale, err = floatEnv("PAGECARVE_MIN_SCALE", cfg.Pipeline.MinScale); err != nil {
		return nil, err
	}
	if cfg.Pipeline.MinArea, err = intEnv("PAGECARVE_MIN_AREA", cfg.Pipeline.MinArea); err != nil {
		return nil, err
	}
	if cfg.Pipeline.MergeDistance, err = intEnv("PAGECARVE_MERGE_DISTANCE", cfg.Pipeline.MergeDistance); err != nil {
		return nil, err
	}
	if cfg.Pipeline.Padding, err = intEnv("PAGECARVE_PADDING", cfg.Pipeline.Padding); err != nil {
		return nil, err
	}
	if cfg.Pipeline.Contrast, err = floatEnv("PAGECARVE_CONTRAST", cfg.Pipeline.Contrast); err != nil {
		return nil, err
	}
	if cfg.Pipeline.Brightness, err = floatEnv("PAGECARVE_BRIGHTNESS", cfg.Pipeline.Brightness); err != nil {
		return nil, err
	}
	if lang := os.Getenv("PAGECARVE_OCR_LANGUAGE"); lang != "" {
		cfg.Recognition.Language = lang
	}
	if cfg.Recognition.Workers, err = intEnv("PAGECARVE_OCR_WORKERS", cfg.Recognition.Workers); err != nil {
		return nil, err
	}
	if cfg.RenderScale, err = floatEnv("PAGECARVE_RENDER_SCALE", cfg.RenderScale); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
