package repository

import (
	"context"
	"fmt"

	"s3-buckets/internal/app/interfaces"
	"s3-buckets/internal/app/structs"

	"github.com/jmoiron/sqlx"
)

var _ interfaces.AuditRepository = (*AuditRepository)(nil)

type AuditRepository struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) Record(ctx context.Context, audit structs.ListingAudit) error {
	_, err := r.DB.NamedExecContext(ctx,
		`INSERT INTO bucket_listings(sort_order, outcome, bucket_count, error_message, requested_at)
		 VALUES (:sort_order, :outcome, :bucket_count, :error_message, :requested_at)`,
		audit,
	)
	if err != nil {
		return fmt.Errorf("insert bucket listing: %w", err)
	}
	return nil
}

// Recent returns up to limit audit rows, newest first.
func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]structs.ListingAudit, error) {
	audits := make([]structs.ListingAudit, 0, limit)
	query := r.DB.Rebind(`SELECT id, sort_order, outcome, bucket_count, error_message, requested_at
		FROM bucket_listings ORDER BY requested_at DESC, id DESC LIMIT ?`)
	if err := r.DB.SelectContext(ctx, &audits, query, limit); err != nil {
		return nil, fmt.Errorf("select bucket listings: %w", err)
	}
	return audits, nil
}
