package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// RecordRepo archives extracted disclosure records by receipt number.
type RecordRepo struct{}

// NewRecordRepo creates a repository instance.
func NewRecordRepo() *RecordRepo {
	return &RecordRepo{}
}

// Schema assumption, managed outside the pipeline:
//
// CREATE TABLE IF NOT EXISTS disclosure_records (
//   rcept_no TEXT PRIMARY KEY,
//   route TEXT,
//   record_json JSONB,
//   updated_at TIMESTAMPTZ
// );

// SaveRecord upserts one extracted record. The receipt number is the key,
// so re-running a window overwrites rather than duplicates.
func (r *RecordRepo) SaveRecord(ctx context.Context, rceptNo string, route string, record any) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	query := `
		INSERT INTO disclosure_records (rcept_no, route, record_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (rcept_no)
		DO UPDATE SET
			route = EXCLUDED.route,
			record_json = EXCLUDED.record_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, rceptNo, route, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save record %s: %w", rceptNo, err)
	}
	return nil
}

// LoadRecord retrieves the archived JSON for a receipt number along with its
// route name.
func (r *RecordRepo) LoadRecord(ctx context.Context, rceptNo string) ([]byte, string, error) {
	pool := GetPool()
	if pool == nil {
		return nil, "", fmt.Errorf("database pool not initialized")
	}

	query := `SELECT record_json, route FROM disclosure_records WHERE rcept_no = $1`

	var jsonData []byte
	var route string
	err := pool.QueryRow(ctx, query, rceptNo).Scan(&jsonData, &route)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", fmt.Errorf("no record archived for %s", rceptNo)
		}
		return nil, "", fmt.Errorf("failed to load record %s: %w", rceptNo, err)
	}
	return jsonData, route, nil
}
