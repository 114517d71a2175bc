package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

// RunReportRepository stores the per-run summaries (row counts and
// rejects) so operators can audit past ingests.
type RunReportRepository struct {
	db *sql.DB
}

func NewRunReportRepository(db *sql.DB) *RunReportRepository {
	return &RunReportRepository{db: db}
}

// Create inserts a run report. Rejects travel as JSONB.
func (r *RunReportRepository) Create(report *domain.Report) error {
	if report.RunID == "" {
		report.RunID = uuid.New().String()
	}

	rejectsJSON, err := json.Marshal(report.Rejects)
	if err != nil {
		return fmt.Errorf("marshal rejects: %w", err)
	}

	const query = `
		INSERT INTO ingest_runs
			(run_id, source, rows_total, rows_mapped, rows_rejected, rows_without_gene, rejects, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := r.db.Exec(query,
		report.RunID,
		report.Source,
		report.RowsTotal,
		report.RowsMapped,
		report.RowsRejected,
		report.RowsWithoutGene,
		rejectsJSON,
		report.StartedAt,
		report.FinishedAt,
	); err != nil {
		return fmt.Errorf("insert ingest run: %w", err)
	}

	return nil
}

// GetByRunID loads a single run report.
func (r *RunReportRepository) GetByRunID(runID string) (*domain.Report, error) {
	const query = `
		SELECT run_id, source, rows_total, rows_mapped, rows_rejected, rows_without_gene, rejects, started_at, finished_at
		FROM ingest_runs
		WHERE run_id = $1`

	var report domain.Report
	var rejectsJSON []byte

	err := r.db.QueryRow(query, runID).Scan(
		&report.RunID,
		&report.Source,
		&report.RowsTotal,
		&report.RowsMapped,
		&report.RowsRejected,
		&report.RowsWithoutGene,
		&rejectsJSON,
		&report.StartedAt,
		&report.FinishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select ingest run: %w", err)
	}

	if len(rejectsJSON) > 0 {
		if err := json.Unmarshal(rejectsJSON, &report.Rejects); err != nil {
			return nil, fmt.Errorf("unmarshal rejects: %w", err)
		}
	}

	return &report, nil
}

// ListRecent returns the newest run reports, most recent first.
func (r *RunReportRepository) ListRecent(limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT run_id, source, rows_total, rows_mapped, rows_rejected, rows_without_gene, rejects, started_at, finished_at
		FROM ingest_runs
		ORDER BY started_at DESC
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list ingest runs: %w", err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		var report domain.Report
		var rejectsJSON []byte
		if err := rows.Scan(
			&report.RunID,
			&report.Source,
			&report.RowsTotal,
			&report.RowsMapped,
			&report.RowsRejected,
			&report.RowsWithoutGene,
			&rejectsJSON,
			&report.StartedAt,
			&report.FinishedAt,
		); err != nil {
			return nil, err
		}
		if len(rejectsJSON) > 0 {
			if err := json.Unmarshal(rejectsJSON, &report.Rejects); err != nil {
				return nil, fmt.Errorf("unmarshal rejects: %w", err)
			}
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}
