package cronjob

import (
	"context"
	"log"
	"path/filepath"
	"sort"

	"github.com/robfig/cron/v3"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/service"
)

// Scheduler re-ingests every table found in the data directory on a
// cron spec. This is the enclosing pipeline around the mapper: the
// mapper itself stays per-row and stateless.
type Scheduler struct {
	pipeline *service.Pipeline
	dataDir  string
	outDir   string
	spec     string
}

func NewScheduler(pipeline *service.Pipeline, dataDir, outDir, spec string) *Scheduler {
	if spec == "" {
		spec = "0 0 0 * * *" // nightly
	}
	return &Scheduler{pipeline: pipeline, dataDir: dataDir, outDir: outDir, spec: spec}
}

func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, s.runSweep)
	if err != nil {
		log.Printf("failed to create ingest cron job: %v", err)
		return
	}

	log.Printf("Ingest scheduler started (spec %q, dir %s)", s.spec, s.dataDir)
	c.Start()
}

func (s *Scheduler) runSweep() {
	paths, err := filepath.Glob(filepath.Join(s.dataDir, "*.txt"))
	if err != nil {
		log.Printf("ingest sweep glob failed: %v", err)
		return
	}
	tsvs, _ := filepath.Glob(filepath.Join(s.dataDir, "*.tsv"))
	paths = append(paths, tsvs...)
	sort.Strings(paths)

	if len(paths) == 0 {
		log.Printf("ingest sweep: no tables found in %s", s.dataDir)
		return
	}

	ctx := context.Background()
	for _, path := range paths {
		outDir := filepath.Join(s.outDir, filepath.Base(path))
		res, err := s.pipeline.IngestFile(ctx, path, outDir)
		if err != nil {
			log.Printf("ingest sweep: %s failed: %v", path, err)
			continue
		}
		log.Printf("ingest sweep: %s done (mapped=%d rejected=%d)",
			path, res.Report.RowsMapped, res.Report.RowsRejected)
	}
}
