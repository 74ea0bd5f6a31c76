package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Pipeline.TargetDim != 2000 {
		t.Errorf("TargetDim: got %d, want 2000", cfg.Pipeline.TargetDim)
	}
	if cfg.Pipeline.MinScale != 2.0 {
		t.Errorf("MinScale: got %v, want 2.0", cfg.Pipeline.MinScale)
	}
	if cfg.Pipeline.MinArea != 400 {
		t.Errorf("MinArea: got %d, want 400", cfg.Pipeline.MinArea)
	}
	if cfg.Pipeline.MergeDistance != 30 {
		t.Errorf("MergeDistance: got %d, want 30", cfg.Pipeline.MergeDistance)
	}
	if cfg.Pipeline.Padding != 10 {
		t.Errorf("Padding: got %d, want 10", cfg.Pipeline.Padding)
	}
	if cfg.Recognition.Language != "eng" {
		t.Errorf("Language: got %q, want eng", cfg.Recognition.Language)
	}
	if cfg.RenderScale != 2.0 {
		t.Errorf("RenderScale: got %v, want 2.0", cfg.RenderScale)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PAGECARVE_TARGET_DIM", "1500")
	t.Setenv("PAGECARVE_MIN_SCALE", "1.5")
	t.Setenv("PAGECARVE_MIN_AREA", "250")
	t.Setenv("PAGECARVE_MERGE_DISTANCE", "50")
	t.Setenv("PAGECARVE_PADDING", "0")
	t.Setenv("PAGECARVE_OCR_LANGUAGE", "deu")
	t.Setenv("PAGECARVE_OCR_WORKERS", "2")
	t.Setenv("PAGECARVE_RENDER_SCALE", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Pipeline.TargetDim != 1500 {
		t.Errorf("TargetDim: got %d, want 1500", cfg.Pipeline.TargetDim)
	}
	if cfg.Pipeline.MinScale != 1.5 {
		t.Errorf("MinScale: got %v, want 1.5", cfg.Pipeline.MinScale)
	}
	if cfg.Pipeline.MinArea != 250 {
		t.Errorf("MinArea: got %d, want 250", cfg.Pipeline.MinArea)
	}
	if cfg.Pipeline.MergeDistance != 50 {
		t.Errorf("MergeDistance: got %d, want 50", cfg.Pipeline.MergeDistance)
	}
	if cfg.Pipeline.Padding != 0 {
		t.Errorf("Padding: got %d, want 0", cfg.Pipeline.Padding)
	}
	if cfg.Recognition.Language != "deu" {
		t.Errorf("Language: got %q, want deu", cfg.Recognition.Language)
	}
	if cfg.Recognition.Workers != 2 {
		t.Errorf("Workers: got %d, want 2", cfg.Recognition.Workers)
	}
	if cfg.RenderScale != 3.0 {
		t.Errorf("RenderScale: got %v, want 3.0", cfg.RenderScale)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PAGECARVE_MIN_AREA", "lots")

	if _, err := Load(); err == nil {
		t.Error("Expected error for non-numeric PAGECARVE_MIN_AREA")
	}
}
