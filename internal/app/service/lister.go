package service

import (
	"context"
	"time"

	"s3-buckets/internal/app/interfaces"
	"s3-buckets/internal/app/structs"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"
)

var _ interfaces.BucketLister = (*BucketService)(nil)

// BucketService lists the buckets of the account behind api. It keeps no
// per-call state and is safe for concurrent use.
type BucketService struct {
	api      s3iface.S3API
	recorder interfaces.ListingRecorder
	logger   logrus.FieldLogger
	now      func() time.Time
}

// New returns a BucketService. recorder may be nil, in which case listings
// are not audited.
func New(api s3iface.S3API, recorder interfaces.ListingRecorder, logger logrus.FieldLogger) *BucketService {
	return &BucketService{
		api:      api,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// ListBucketNames validates the sort directive, fetches all buckets with a
// single ListBuckets call and returns their names in the requested order.
// An invalid directive returns ErrInvalidSortOrder without calling S3.
// Provider failures are returned as *UpstreamError.
func (s *BucketService) ListBucketNames(ctx context.Context, sort string) ([]string, error) {
	logger := s.logger.WithField("sort", sort)

	order, err := ParseSortOrder(sort)
	if err != nil {
		logger.Warn("Rejected bucket listing: invalid sort order")
		s.record(ctx, sort, structs.OutcomeInvalidArgument, 0, err)
		return nil, err
	}

	resp, err := s.api.ListBucketsWithContext(ctx, &s3.ListBucketsInput{})
	if err != nil {
		uerr := &UpstreamError{Err: err}
		logger.WithError(err).Error("Unable to list buckets")
		s.record(ctx, sort, structs.OutcomeUpstreamFailure, 0, uerr)
		return nil, uerr
	}

	var buckets []*s3.Bucket
	if resp != nil {
		buckets = resp.Buckets
	}
	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, aws.StringValue(b.Name))
	}
	SortNames(names, order)

	logger.WithField("count", len(names)).Debug("Listed buckets")
	s.record(ctx, sort, structs.OutcomeOK, len(names), nil)
	return names, nil
}

func (s *BucketService) record(ctx context.Context, sort string, outcome string, count int, cause error) {
	if s.recorder == nil {
		return
	}
	audit := structs.ListingAudit{
		SortOrder:   sort,
		Outcome:     outcome,
		BucketCount: count,
		RequestedAt: s.now().UTC(),
	}
	if cause != nil {
		audit.ErrorMessage = cause.Error()
	}
	if err := s.recorder.Record(ctx, audit); err != nil {
		s.logger.WithError(err).Warn("Unable to record bucket listing")
	}
}
