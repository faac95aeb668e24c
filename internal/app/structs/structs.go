package structs

import (
	"time"
)

const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeUpstreamFailure = "upstream_failure"
)

// ListingAudit is one row of the bucket_listings audit table.
type ListingAudit struct {
	Id           int64     `db:"id" json:"id"`
	SortOrder    string    `db:"sort_order" json:"sortOrder"`
	Outcome      string    `db:"outcome" json:"outcome"`
	BucketCount  int       `db:"bucket_count" json:"bucketCount"`
	ErrorMessage string    `db:"error_message" json:"errorMessage,omitempty"`
	RequestedAt  time.Time `db:"requested_at" json:"requestedAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ListRequest is a websocket message asking for a bucket listing.
type ListRequest struct {
	Sort string `json:"sort"`
}

type ListStatus struct {
	Code    int      `json:"code"`
	Status  string   `json:"status"`
	Buckets []string `json:"buckets,omitempty"`
	Error   string   `json:"error,omitempty"`
}
