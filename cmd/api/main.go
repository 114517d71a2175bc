package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/omia-kg/omia-ingest-backend/config"
	"github.com/omia-kg/omia-ingest-backend/internal/bootstrap"
	appcache "github.com/omia-kg/omia-ingest-backend/internal/cache"
	cronjob "github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/cron"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/curie"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/service"
	"github.com/omia-kg/omia-ingest-backend/internal/storage/postgres"
)

const serviceName = "omia-ingest"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var pool *pgxpool.Pool
	var store service.AssociationStore
	var reports service.RunReportStore
	if cfg.Database.Enabled {
		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
		store = postgres.NewAssociationStore(pool)

		sqlDB, err := postgres.NewConnection(&cfg.Database)
		if err != nil {
			log.Fatalf("db (sql): %v", err)
		}
		defer sqlDB.Close()
		reports = postgres.NewRunReportRepository(sqlDB)
	}

	var reportCache service.ReportCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer client.Close()
		reportCache = appcache.NewReportCache(client)
	}

	cm := curie.Default()
	if cfg.Ingest.CurieMap != "" {
		cm, err = curie.Load(cfg.Ingest.CurieMap)
		if err != nil {
			log.Fatalf("curie map: %v", err)
		}
	}

	pipeline := service.NewPipeline(cm, store, reportCache)
	if reports != nil {
		pipeline.WithRunReports(reports)
	}

	if cfg.Ingest.CronEnabled {
		sched := cronjob.NewScheduler(pipeline, cfg.Ingest.DataDir, cfg.Ingest.OutDir, cfg.Ingest.CronSpec)
		sched.Start()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		APIKey:      cfg.Server.APIKey,
		OutDir:      cfg.Ingest.OutDir,
		DB:          pool,
		Pipeline:    pipeline,
		ReportCache: reportCache,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
