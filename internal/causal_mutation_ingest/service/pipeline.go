package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/curie"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/graph"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/graph/export"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/ingest/mapper"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/ingest/reader"
)

// AssociationStore persists mapped records. Optional; a nil store means
// the run is export-only.
type AssociationStore interface {
	UpsertBatch(ctx context.Context, assocs []*domain.Association) error
}

// ReportCache keeps the latest run report available to the API.
// Optional.
type ReportCache interface {
	SetLatest(ctx context.Context, report *domain.Report) error
	Latest(ctx context.Context) (*domain.Report, error)
}

// RunReportStore persists the per-run summary for auditing. Optional.
type RunReportStore interface {
	Create(report *domain.Report) error
}

type Result struct {
	Report       *domain.Report        `json:"report"`
	Associations []*domain.Association `json:"associations"`
	JSONPath     string                `json:"json_path"`
	DOTPath      string                `json:"dot_path"`
	NTPath       string                `json:"nt_path"`
}

type Pipeline struct {
	mapper  *mapper.Mapper
	curies  curie.Map
	store   AssociationStore
	cache   ReportCache
	reports RunReportStore
}

func NewPipeline(cm curie.Map, store AssociationStore, cache ReportCache) *Pipeline {
	if cm == nil {
		cm = curie.Default()
	}
	return &Pipeline{
		mapper: mapper.New(),
		curies: cm,
		store:  store,
		cache:  cache,
	}
}

// WithRunReports makes the pipeline record each run's report.
func (p *Pipeline) WithRunReports(reports RunReportStore) *Pipeline {
	p.reports = reports
	return p
}

// IngestFile runs the full pipeline over a table on disk, writing
// graph.json, graph.dot and graph.nt into outDir.
func (p *Pipeline) IngestFile(ctx context.Context, path, outDir string) (*Result, error) {
	recs, err := reader.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.run(ctx, recs, filepath.Base(path), outDir)
}

// IngestBytes runs the pipeline over an in-memory table, writing
// artifacts into a fresh run directory under outBaseDir/runs/<id>.
func (p *Pipeline) IngestBytes(ctx context.Context, data []byte, source, outBaseDir string) (*Result, error) {
	recs, err := reader.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if outBaseDir == "" {
		outBaseDir = "out"
	}
	runDir := filepath.Join(outBaseDir, "runs", uuid.New().String())
	return p.run(ctx, recs, source, runDir)
}

func (p *Pipeline) run(ctx context.Context, recs []reader.Record, source, outDir string) (*Result, error) {
	report := &domain.Report{
		RunID:     uuid.New().String(),
		Source:    source,
		Rejects:   []domain.Reject{},
		StartedAt: time.Now().UTC(),
	}

	assocs := make([]*domain.Association, 0, len(recs))
	for _, rec := range recs {
		report.RowsTotal++
		a, err := p.mapper.MapFields(rec.Line, rec.Fields)
		if err != nil {
			mre, ok := domain.AsMalformedRow(err)
			if !ok {
				return nil, err
			}
			log.Printf("[ingest] run=%s skipping row: %v", report.RunID, mre)
			report.RowsRejected++
			report.Rejects = append(report.Rejects, domain.Reject{
				Line: mre.Line, Field: mre.Field, Reason: mre.Reason,
			})
			continue
		}
		report.RowsMapped++
		if !a.HasSubject() {
			report.RowsWithoutGene++
		}
		assocs = append(assocs, a)
	}

	if outDir == "" {
		outDir = "out"
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}

	g := graph.FromAssociations(assocs)

	res := &Result{
		Report:       report,
		Associations: assocs,
		JSONPath:     filepath.Join(outDir, "graph.json"),
		DOTPath:      filepath.Join(outDir, "graph.dot"),
		NTPath:       filepath.Join(outDir, "graph.nt"),
	}

	if err := export.WriteJSON(res.JSONPath, map[string]any{
		"report":       report,
		"graph":        g,
		"associations": assocs,
	}); err != nil {
		return nil, err
	}
	if err := os.WriteFile(res.DOTPath, []byte(export.ToDOT(g, source)), 0644); err != nil {
		return nil, err
	}
	if err := export.WriteNTriples(res.NTPath, assocs, p.curies); err != nil {
		return nil, err
	}

	if p.store != nil && len(assocs) > 0 {
		if err := p.store.UpsertBatch(ctx, assocs); err != nil {
			return nil, fmt.Errorf("persist associations: %w", err)
		}
	}

	report.FinishedAt = time.Now().UTC()

	if p.reports != nil {
		if err := p.reports.Create(report); err != nil {
			return nil, fmt.Errorf("persist run report: %w", err)
		}
	}

	if p.cache != nil {
		if err := p.cache.SetLatest(ctx, report); err != nil {
			// cache is best effort; the run itself succeeded
			log.Printf("[ingest] run=%s cache report failed: %v", report.RunID, err)
		}
	}

	log.Printf("[ingest] run=%s source=%s rows=%d mapped=%d rejected=%d without_gene=%d",
		report.RunID, source, report.RowsTotal, report.RowsMapped, report.RowsRejected, report.RowsWithoutGene)

	return res, nil
}
