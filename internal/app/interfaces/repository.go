package interfaces

import (
	"context"

	"s3-buckets/internal/app/structs"
)

type ListingRecorder interface {
	Record(ctx context.Context, audit structs.ListingAudit) error
}

type AuditRepository interface {
	ListingRecorder
	Recent(ctx context.Context, limit int) ([]structs.ListingAudit, error)
}
