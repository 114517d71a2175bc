package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

func setupCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewReportCache(client), mr
}

func sampleReport() *domain.Report {
	return &domain.Report{
		RunID:           "run-123",
		Source:          "causal_mutations.txt",
		RowsTotal:       762,
		RowsMapped:      760,
		RowsRejected:    2,
		RowsWithoutGene: 87,
		Rejects:         []domain.Reject{{Line: 17, Field: "row", Reason: "short"}},
		StartedAt:       time.Now().UTC().Truncate(time.Second),
		FinishedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func TestReportCache_SetLatestAndGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetLatest(ctx, sampleReport()))

	latest, err := c.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-123", latest.RunID)
	assert.Equal(t, 87, latest.RowsWithoutGene)
	require.Len(t, latest.Rejects, 1)

	byID, err := c.ByRunID(ctx, "run-123")
	require.NoError(t, err)
	assert.Equal(t, latest.RowsTotal, byID.RowsTotal)
}

func TestReportCache_LatestMissing(t *testing.T) {
	c, _ := setupCache(t)

	_, err := c.Latest(context.Background())
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestReportCache_EntriesExpire(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetLatest(ctx, sampleReport()))

	mr.FastForward(reportTTL + time.Minute)

	_, err := c.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	_, err = c.ByRunID(ctx, "run-123")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}
