package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	yamlDoc := `
pipeline:
  corp_code: "00126380"
  begin_date: "20250101"
  end_date: "20250630"
  report_type: "A"
briefing:
  tts_endpoint: "http://localhost:5002/api/tts"
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Pipeline.CorpCode != "00126380" {
		t.Errorf("CorpCode = %q", cfg.Pipeline.CorpCode)
	}
	if cfg.Pipeline.WorkDir != "work" || cfg.Pipeline.OutputDir != "output" {
		t.Errorf("directory defaults not applied: %+v", cfg.Pipeline)
	}
	if cfg.Briefing.Provider != "gemini" {
		t.Errorf("Provider default = %q, want gemini", cfg.Briefing.Provider)
	}
	if cfg.Briefing.OutputDir != "video_output" {
		t.Errorf("Briefing.OutputDir default = %q", cfg.Briefing.OutputDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
