package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"dartbrief/pkg/config"
	"dartbrief/pkg/core/briefing"
	"dartbrief/pkg/core/llm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	configPath := flag.String("config", "config/pipeline.yaml", "path to the pipeline config")
	noImage := flag.Bool("no-image", false, "skip background image generation")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: briefing [-config path] [-no-image] <record.json> [more.json ...]")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	var provider llm.Provider
	switch cfg.Briefing.Provider {
	case "openai":
		provider = &llm.OpenAIProvider{Model: cfg.Briefing.Model}
	case "gemini", "":
		provider = &llm.GeminiProvider{Model: cfg.Briefing.Model}
	default:
		log.Fatalf("Error: unknown briefing provider %q", cfg.Briefing.Provider)
	}

	var images *briefing.ImageGenerator
	if !*noImage {
		images = briefing.NewImageGenerator(os.Getenv("OPENAI_API_KEY"))
	}

	builder := briefing.NewBuilder(
		briefing.NewScriptAgent(provider),
		briefing.NewSynthesizer(cfg.Briefing.TTSEndpoint),
		images,
		cfg.Briefing.OutputDir,
	)

	ctx := context.Background()
	fmt.Println("🎬 Briefing Builder Starting...")

	failures := 0
	for _, jsonPath := range flag.Args() {
		videoPath, err := builder.Build(ctx, jsonPath)
		if err != nil {
			log.Printf("Error: %s: %v", filepath.Base(jsonPath), err)
			failures++
			continue
		}
		fmt.Printf("✨ %s\n", videoPath)
	}

	if failures > 0 {
		os.Exit(1)
	}
}
