package repository

import (
	"context"
	"testing"
	"time"

	"s3-buckets/internal/app/structs"
	auditdb "s3-buckets/internal/db"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *AuditRepository {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, auditdb.Migrate(db))
	return New(db)
}

func TestRecordAndRecent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	rows := []structs.ListingAudit{
		{SortOrder: "asc", Outcome: structs.OutcomeOK, BucketCount: 3, RequestedAt: base},
		{SortOrder: "sideways", Outcome: structs.OutcomeInvalidArgument, ErrorMessage: "Invalid sort order. Valid options are 'asc' or 'desc'", RequestedAt: base.Add(time.Second)},
		{SortOrder: "desc", Outcome: structs.OutcomeUpstreamFailure, ErrorMessage: "AccessDenied", RequestedAt: base.Add(2 * time.Second)},
	}
	for _, row := range rows {
		require.NoError(t, repo.Record(ctx, row))
	}

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "desc", got[0].SortOrder)
	assert.Equal(t, structs.OutcomeUpstreamFailure, got[0].Outcome)
	assert.Equal(t, "AccessDenied", got[0].ErrorMessage)
	assert.True(t, got[0].RequestedAt.Equal(base.Add(2*time.Second)))

	assert.Equal(t, "sideways", got[1].SortOrder)
	assert.NotZero(t, got[1].Id)
}

func TestRecentEmpty(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRecordWithoutTable(t *testing.T) {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	err = New(db).Record(context.Background(), structs.ListingAudit{SortOrder: "asc", Outcome: structs.OutcomeOK})
	assert.ErrorContains(t, err, "insert bucket listing")
}
