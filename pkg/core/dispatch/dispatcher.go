// Package dispatch routes fetched disclosures to the right extractor based on
// the report title and manages the per-receipt artifact lifecycle: a raw
// <rcept_no>.xml working copy while parsing, a <rcept_no>.json result on
// success.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"dartbrief/pkg/core/earnings"
	"dartbrief/pkg/core/rights"
	"dartbrief/pkg/models"
)

// Route names for the two supported report families.
const (
	RouteEarnings = "earnings"
	RouteRights   = "rights"
)

// earningsTitles are the report-name substrings handled by the earnings
// extractor. 유상증자결정 goes to the rights extractor; anything else is
// skipped without counting as processed.
var earningsTitles = []string{"반기보고서", "분기보고서"}

const rightsTitle = "유상증자결정"

// DocumentFetcher retrieves the raw document body for a receipt number.
// *dart.Client is the production implementation.
type DocumentFetcher interface {
	FetchDocument(rceptNo string) (string, error)
}

// Archiver persists a finished record keyed by receipt number. Optional;
// a nil archiver disables persistence.
type Archiver interface {
	SaveRecord(ctx context.Context, rceptNo string, route string, record any) error
}

// RunStats summarizes one dispatcher run. Skipped items are disclosures
// whose title matched no route; they are not part of TotalProcessed.
type RunStats struct {
	RunID          string `json:"run_id"`
	TotalProcessed int    `json:"total_processed"`
	Success        int    `json:"success"`
	Failed         int    `json:"failed"`
	Skipped        int    `json:"skipped"`
}

// Dispatcher drives the fetch-parse-write loop over a disclosure list.
type Dispatcher struct {
	fetcher  DocumentFetcher
	archiver Archiver
	workDir  string // raw .xml working copies
	outDir   string // .json results
}

// NewDispatcher creates a dispatcher writing artifacts under the given
// directories. Both directories are created on first use.
func NewDispatcher(fetcher DocumentFetcher, workDir string, outDir string) *Dispatcher {
	return &Dispatcher{
		fetcher: fetcher,
		workDir: workDir,
		outDir:  outDir,
	}
}

// SetArchiver injects an optional persistence backend for finished records.
func (d *Dispatcher) SetArchiver(archiver Archiver) {
	d.archiver = archiver
}

// RouteFor returns the extractor route for a report title, or "" when the
// title matches no supported report family.
func RouteFor(reportName string) string {
	for _, title := range earningsTitles {
		if strings.Contains(reportName, title) {
			return RouteEarnings
		}
	}
	if strings.Contains(reportName, rightsTitle) {
		return RouteRights
	}
	return ""
}

// Run processes the disclosure list sequentially and returns per-run counters.
// A fetch or parse failure counts the item as failed and moves on; the raw
// .xml working copy is removed only after the .json result is written, so a
// failed item leaves its raw document behind for inspection.
func (d *Dispatcher) Run(ctx context.Context, items []models.DisclosureItem) (RunStats, error) {
	stats := RunStats{RunID: uuid.NewString()}

	if err := os.MkdirAll(d.workDir, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create work dir: %w", err)
	}
	if err := os.MkdirAll(d.outDir, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create output dir: %w", err)
	}

	log.Printf("[Dispatch] run %s: %d disclosures queued", stats.RunID, len(items))

	for _, item := range items {
		route := RouteFor(item.ReportName)
		if route == "" {
			stats.Skipped++
			continue
		}
		stats.TotalProcessed++

		if err := d.processOne(ctx, item, route); err != nil {
			log.Printf("[Dispatch] %s (%s) failed: %v", item.ReceiptNo, item.ReportName, err)
			stats.Failed++
			continue
		}
		stats.Success++
	}

	log.Printf("[Dispatch] run %s done: processed=%d success=%d failed=%d skipped=%d",
		stats.RunID, stats.TotalProcessed, stats.Success, stats.Failed, stats.Skipped)
	return stats, nil
}

// processOne handles a single disclosure end to end.
func (d *Dispatcher) processOne(ctx context.Context, item models.DisclosureItem, route string) error {
	body, err := d.fetcher.FetchDocument(item.ReceiptNo)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	rawPath := filepath.Join(d.workDir, item.ReceiptNo+".xml")
	if err := os.WriteFile(rawPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write raw document: %w", err)
	}

	var record any
	switch route {
	case RouteEarnings:
		record, err = earnings.NewParser().Parse(body)
	case RouteRights:
		record, err = rights.Parse(body)
	default:
		return fmt.Errorf("unknown route %q", route)
	}
	if err != nil {
		return fmt.Errorf("parse (%s): %w", route, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	outPath := filepath.Join(d.outDir, item.ReceiptNo+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	if d.archiver != nil {
		if err := d.archiver.SaveRecord(ctx, item.ReceiptNo, route, record); err != nil {
			// Persistence is best effort; the .json on disk is the
			// source of truth for downstream stages.
			log.Printf("[Dispatch] archive for %s failed: %v", item.ReceiptNo, err)
		}
	}

	if err := os.Remove(rawPath); err != nil {
		log.Printf("[Dispatch] failed to remove working copy %s: %v", rawPath, err)
	}
	return nil
}
