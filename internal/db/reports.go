package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mbellini/landing-optimizer/internal/types"
)

// StoredReport is one archived report row.
type StoredReport struct {
	ID        uuid.UUID
	URL       string
	FocusArea string
	Industry  string
	Goals     []string
	Benchmark int
	Repaired  bool
	Payload   *types.Report
	CreatedAt time.Time
}

// ReportSummary is the listing view of an archived report (payload omitted).
type ReportSummary struct {
	ID        uuid.UUID
	URL       string
	FocusArea string
	Industry  string
	Benchmark int
	CreatedAt time.Time
}

// SaveReport archives a finished report and returns its ID.
func (db *DB) SaveReport(ctx context.Context, r *StoredReport) (uuid.UUID, error) {
	payload, err := json.Marshal(r.Payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report payload: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO reports (id, url, focus_area, industry, goals, benchmark, repaired, payload)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, r.URL, r.FocusArea, r.Industry, r.Goals, r.Benchmark, r.Repaired, payload,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport retrieves an archived report by ID. Returns nil when absent.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*StoredReport, error) {
	var (
		r       StoredReport
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, focus_area, industry, goals, benchmark, repaired, payload, created_at
		 FROM reports WHERE id = $1`, id,
	).Scan(&r.ID, &r.URL, &r.FocusArea, &r.Industry, &r.Goals, &r.Benchmark, &r.Repaired, &payload, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report %s: %w", id, err)
	}

	r.Payload = &types.Report{}
	if err := json.Unmarshal(payload, r.Payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report payload %s: %w", id, err)
	}
	return &r, nil
}

// ListReports returns recent report summaries, newest first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, url, focus_area, industry, benchmark, created_at
		 FROM reports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]ReportSummary, 0)
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.URL, &s.FocusArea, &s.Industry, &s.Benchmark, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeleteReport removes an archived report. Returns whether a row was deleted.
func (db *DB) DeleteReport(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
