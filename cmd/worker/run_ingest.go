package main

import (
	"context"
	"flag"
	"log"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/curie"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/service"
)

// RunIngest maps one causal-mutation table from disk and writes the
// graph artifacts, without touching Postgres or Redis.
func RunIngest(args []string) {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	outDir := fs.String("out", "out", "directory for graph.json / graph.dot / graph.nt")
	curieMap := fs.String("curie-map", "", "optional YAML file overriding curie prefixes")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		log.Fatal("usage: worker ingest [-out dir] [-curie-map file] <tsvPath>")
	}
	path := fs.Arg(0)

	cm := curie.Default()
	if *curieMap != "" {
		var err error
		cm, err = curie.Load(*curieMap)
		if err != nil {
			log.Fatalf("curie map: %v", err)
		}
	}

	pipeline := service.NewPipeline(cm, nil, nil)

	res, err := pipeline.IngestFile(context.Background(), path, *outDir)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	rep := res.Report
	log.Printf("ingest complete: rows=%d mapped=%d rejected=%d without_gene=%d",
		rep.RowsTotal, rep.RowsMapped, rep.RowsRejected, rep.RowsWithoutGene)
	for _, rej := range rep.Rejects {
		log.Printf("  rejected line %d (%s): %s", rej.Line, rej.Field, rej.Reason)
	}
	log.Printf("artifacts: %s %s %s", res.JSONPath, res.DOTPath, res.NTPath)
}
