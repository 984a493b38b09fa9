package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"dartbrief/pkg/config"
	"dartbrief/pkg/core/dart"
	"dartbrief/pkg/core/dispatch"
	"dartbrief/pkg/core/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	configPath := flag.String("config", "config/pipeline.yaml", "path to the pipeline config")
	corpCode := flag.String("corp", "", "override corp_code from the config")
	beginDate := flag.String("begin", "", "override begin_date (YYYYMMDD)")
	endDate := flag.String("end", "", "override end_date (YYYYMMDD)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if *corpCode != "" {
		cfg.Pipeline.CorpCode = *corpCode
	}
	if *beginDate != "" {
		cfg.Pipeline.BeginDate = *beginDate
	}
	if *endDate != "" {
		cfg.Pipeline.EndDate = *endDate
	}

	apiKey := os.Getenv("DART_API_KEY")
	if apiKey == "" {
		log.Fatal("Error: DART_API_KEY is not set.")
	}

	fmt.Println("🚀 DART Disclosure Pipeline Starting...")
	fmt.Printf("📂 %s, %s ~ %s\n", cfg.Pipeline.CorpCode, cfg.Pipeline.BeginDate, cfg.Pipeline.EndDate)

	ctx := context.Background()
	client := dart.NewClient(apiKey)

	items, err := client.ListDisclosures(dart.ListQuery{
		CorpCode:   cfg.Pipeline.CorpCode,
		BeginDate:  cfg.Pipeline.BeginDate,
		EndDate:    cfg.Pipeline.EndDate,
		ReportType: cfg.Pipeline.ReportType,
	})
	if err != nil {
		log.Fatalf("Disclosure listing failed: %v", err)
	}
	if len(items) == 0 {
		fmt.Println("No disclosures in the window. Nothing to do.")
		return
	}
	fmt.Printf("Found %d disclosures.\n", len(items))

	dispatcher := dispatch.NewDispatcher(client, cfg.Pipeline.WorkDir, cfg.Pipeline.OutputDir)

	// The Postgres archive is optional; enable it only when configured.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			log.Printf("Warning: archive disabled: %v", err)
		} else {
			defer store.Close()
			dispatcher.SetArchiver(store.NewRecordRepo())
			fmt.Println("Archive enabled (Postgres).")
		}
	}

	stats, err := dispatcher.Run(ctx, items)
	if err != nil {
		log.Fatalf("Pipeline run failed: %v", err)
	}

	fmt.Println("\n=== Run Summary ===")
	fmt.Printf("Run ID:    %s\n", stats.RunID)
	fmt.Printf("Processed: %d\n", stats.TotalProcessed)
	fmt.Printf("Success:   %d\n", stats.Success)
	fmt.Printf("Failed:    %d\n", stats.Failed)
	fmt.Printf("Skipped:   %d\n", stats.Skipped)
	fmt.Printf("\nRecords written to %s/\n", cfg.Pipeline.OutputDir)
}
