package service

import (
	"context"
	"errors"

	"design-request-app/internal/domain/requests"
)

// SetStatus updates only the status column. Store failures surface uncaught:
// a reviewer action must report its true outcome, and not-found stays
// distinct from permission-denied.
func (s *Service) SetStatus(ctx context.Context, id string, status requests.Status) error {
	return s.store.Update(ctx, id, map[string]interface{}{"status": status})
}

// DeleteRequest removes a record, gated on the completed status. Deleting an
// id that is already gone is not an error at this layer.
func (s *Service) DeleteRequest(ctx context.Context, id string) error {
	req, err := s.store.Get(ctx, id)
	if errors.Is(err, requests.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if req.Status != requests.StatusCompleted {
		return requests.ErrPreconditionFailed
	}

	if err := s.store.Delete(ctx, id); err != nil && !errors.Is(err, requests.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (*requests.DesignRequest, error) {
	return s.store.Get(ctx, id)
}

// ListRequests returns requests newest-first, optionally filtered by status.
func (s *Service) ListRequests(ctx context.Context, status requests.Status) ([]requests.DesignRequest, error) {
	return s.store.List(ctx, status)
}
