package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

const (
	latestReportKey = "omia:report:latest"
	reportKeyPrefix = "omia:report:" // omia:report:{run_id}
	reportTTL       = 7 * 24 * time.Hour
)

// ReportCache keeps recent ingest-run reports in Redis so the API can
// answer "what happened on the last run" without touching Postgres.
type ReportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// SetLatest stores the report under its run id and as the latest run,
// atomically.
func (c *ReportCache) SetLatest(ctx context.Context, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, reportKeyPrefix+report.RunID, data, reportTTL)
	pipe.Set(ctx, latestReportKey, data, reportTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

// Latest returns the most recent run report, or ErrReportNotFound when
// no run has completed within the TTL window.
func (c *ReportCache) Latest(ctx context.Context) (*domain.Report, error) {
	return c.get(ctx, latestReportKey)
}

// ByRunID returns the report for a specific run.
func (c *ReportCache) ByRunID(ctx context.Context, runID string) (*domain.Report, error) {
	return c.get(ctx, reportKeyPrefix+runID)
}

func (c *ReportCache) get(ctx context.Context, key string) (*domain.Report, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}
