package api

import (
	"context"
	"errors"

	"github.com/spooltrack/spooltrack/pkg/observability"
	"github.com/spooltrack/spooltrack/pkg/rbac"
	"github.com/spooltrack/spooltrack/pkg/tracking"
)

// instrumentedService counts storage operations and failures per resource.
// ErrNotFound is an expected outcome, not a storage failure.
type instrumentedService struct {
	resource rbac.Resource
	inner    tracking.Service
	metrics  *observability.Metrics
}

func instrument(resource rbac.Resource, inner tracking.Service, metrics *observability.Metrics) tracking.Service {
	if metrics == nil {
		return inner
	}
	return &instrumentedService{resource: resource, inner: inner, metrics: metrics}
}

func (s *instrumentedService) record(operation string, err error) {
	s.metrics.StorageOperationsTotal.WithLabelValues(string(s.resource), operation).Inc()
	if err != nil && !errors.Is(err, tracking.ErrNotFound) {
		s.metrics.StorageErrorsTotal.WithLabelValues(string(s.resource), operation).Inc()
	}
}

func (s *instrumentedService) Create(ctx context.Context, fields map[string]interface{}) (interface{}, error) {
	record, err := s.inner.Create(ctx, fields)
	s.record("create", err)
	return record, err
}

func (s *instrumentedService) Get(ctx context.Context, id string) (interface{}, error) {
	record, err := s.inner.Get(ctx, id)
	s.record("get", err)
	return record, err
}

func (s *instrumentedService) List(ctx context.Context, filter tracking.ListFilter) (interface{}, error) {
	records, err := s.inner.List(ctx, filter)
	s.record("list", err)
	return records, err
}

func (s *instrumentedService) Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error) {
	record, err := s.inner.Update(ctx, id, fields)
	s.record("update", err)
	return record, err
}

func (s *instrumentedService) Delete(ctx context.Context, id string) error {
	err := s.inner.Delete(ctx, id)
	s.record("delete", err)
	return err
}
