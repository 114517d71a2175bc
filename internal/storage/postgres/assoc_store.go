package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

// AssociationStore persists mapped association records. The
// association_id is the conflict target, so re-running an ingest over
// the same input updates rows in place instead of duplicating them.
type AssociationStore struct {
	pool *pgxpool.Pool
}

func NewAssociationStore(pool *pgxpool.Pool) *AssociationStore {
	return &AssociationStore{pool: pool}
}

const upsertAssociationSQL = `
INSERT INTO omia_associations
  (association_id, subject, subject_label, predicate, object, object_label, taxon, xref, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
ON CONFLICT (association_id) DO UPDATE
  SET subject = EXCLUDED.subject,
      subject_label = EXCLUDED.subject_label,
      predicate = EXCLUDED.predicate,
      object = EXCLUDED.object,
      object_label = EXCLUDED.object_label,
      taxon = EXCLUDED.taxon,
      xref = EXCLUDED.xref,
      updated_at = now()
;`

// UpsertBatch writes all records in one transaction. Subject and xref
// are stored as NULL when the row had no gene id, keeping absence
// distinct from an empty string.
func (s *AssociationStore) UpsertBatch(ctx context.Context, assocs []*domain.Association) error {
	if len(assocs) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin upsert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assocs {
		if _, err := tx.Exec(ctx, upsertAssociationSQL,
			a.ID,
			nullable(a.Subject),
			nullable(a.SubjectLabel),
			a.Predicate,
			a.Object,
			a.ObjectLabel,
			a.Taxon,
			nullable(a.Xref),
		); err != nil {
			return fmt.Errorf("upsert association %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit upsert tx: %w", err)
	}
	return nil
}

// CountByTaxon reports how many associations are stored per taxon.
func (s *AssociationStore) CountByTaxon(ctx context.Context) (map[string]int, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT taxon, count(*) FROM omia_associations GROUP BY taxon`)
	if err != nil {
		return nil, fmt.Errorf("count by taxon: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var taxon string
		var n int
		if err := rows.Scan(&taxon, &n); err != nil {
			return nil, err
		}
		counts[taxon] = n
	}
	return counts, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
