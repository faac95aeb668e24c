package interfaces

import (
	"context"
)

// BucketLister returns the account's bucket names ordered by the given
// sort directive ("asc" or "desc", case-insensitive).
type BucketLister interface {
	ListBucketNames(ctx context.Context, sort string) ([]string, error)
}
