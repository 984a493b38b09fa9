package briefing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Builder runs the full briefing flow for one extracted record file:
// script, narration audio, background image, composed video.
type Builder struct {
	agent    *ScriptAgent
	synth    *Synthesizer
	images   *ImageGenerator
	composer *Composer
	outDir   string
}

// NewBuilder wires the briefing stages. images may be nil to skip background
// generation and render on a solid color.
func NewBuilder(agent *ScriptAgent, synth *Synthesizer, images *ImageGenerator, outDir string) *Builder {
	return &Builder{
		agent:    agent,
		synth:    synth,
		images:   images,
		composer: NewComposer(),
		outDir:   outDir,
	}
}

// Build reads an extracted record JSON and produces <name>.mp3 and
// <name>.mp4 next to it in the builder's output directory. Returns the
// video path.
func (b *Builder) Build(ctx context.Context, jsonPath string) (string, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", fmt.Errorf("failed to read record: %w", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return "", fmt.Errorf("failed to decode record %s: %w", jsonPath, err)
	}

	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(jsonPath), filepath.Ext(jsonPath))
	audioPath := filepath.Join(b.outDir, name+".mp3")
	imagePath := filepath.Join(b.outDir, name+".jpg")
	videoPath := filepath.Join(b.outDir, name+".mp4")

	log.Printf("[Briefing] %s: generating script", name)
	script, err := b.agent.GenerateScript(ctx, record)
	if err != nil {
		return "", err
	}

	log.Printf("[Briefing] %s: synthesizing narration", name)
	if err := b.synth.Synthesize(ctx, script, audioPath); err != nil {
		return "", err
	}

	// A failed background is not fatal; the composer falls back to a
	// solid color.
	if b.images != nil {
		log.Printf("[Briefing] %s: generating background image", name)
		prompt := BackgroundPrompt(headlineOf(record))
		if err := b.images.Generate(ctx, prompt, imagePath); err != nil {
			log.Printf("[Briefing] %s: background generation failed: %v", name, err)
			imagePath = ""
		}
	} else {
		imagePath = ""
	}

	log.Printf("[Briefing] %s: composing video", name)
	if err := b.composer.Compose(ctx, imagePath, audioPath, videoPath); err != nil {
		return "", err
	}
	return videoPath, nil
}

// headlineOf pulls the summary title out of an earnings record, or the
// offering type out of a rights record, for the image prompt.
func headlineOf(record map[string]any) string {
	if summary, ok := record["performance_summary"].(map[string]any); ok {
		if title, ok := summary["summary_title"].(string); ok {
			return title
		}
	}
	if decision, ok := record["decision_summary"].(map[string]any); ok {
		if offering, ok := decision["offering_type"].(string); ok && offering != "" {
			return offering + " 유상증자"
		}
	}
	return ""
}
