// Package config loads the pipeline's YAML configuration. Secrets stay in
// the environment (.env); the YAML only carries non-sensitive run settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the top-level configuration, conventionally at
// config/pipeline.yaml.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Briefing BriefingConfig `yaml:"briefing"`
}

// PipelineConfig drives the disclosure extraction run.
type PipelineConfig struct {
	CorpCode   string `yaml:"corp_code"`   // 8-digit DART corporation code
	BeginDate  string `yaml:"begin_date"`  // YYYYMMDD
	EndDate    string `yaml:"end_date"`    // YYYYMMDD
	ReportType string `yaml:"report_type"` // DART pblntf_ty, empty for all
	WorkDir    string `yaml:"work_dir"`    // raw .xml working copies
	OutputDir  string `yaml:"output_dir"`  // extracted .json records
}

// BriefingConfig drives the video briefing stage.
type BriefingConfig struct {
	Provider    string `yaml:"provider"`     // "gemini" (default) or "openai"
	Model       string `yaml:"model"`        // provider-specific model override
	TTSEndpoint string `yaml:"tts_endpoint"` // HTTP TTS service URL
	OutputDir   string `yaml:"output_dir"`   // audio and video artifacts
}

// Load reads and parses the YAML config at path, filling defaults for
// omitted directories.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Pipeline.WorkDir == "" {
		cfg.Pipeline.WorkDir = "work"
	}
	if cfg.Pipeline.OutputDir == "" {
		cfg.Pipeline.OutputDir = "output"
	}
	if cfg.Briefing.Provider == "" {
		cfg.Briefing.Provider = "gemini"
	}
	if cfg.Briefing.OutputDir == "" {
		cfg.Briefing.OutputDir = "video_output"
	}
	return &cfg, nil
}
