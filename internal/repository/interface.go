package repository

import (
	"context"

	"design-request-app/internal/domain/requests"
)

// RequestStore is the durable table of design requests. Implementations map
// their backend's failure modes onto the sentinel errors in domain/requests.
type RequestStore interface {
	Insert(ctx context.Context, req *requests.DesignRequest) error
	Get(ctx context.Context, id string) (*requests.DesignRequest, error)
	// Update writes only the given columns.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	// List returns records newest-first. An empty status means no filter.
	List(ctx context.Context, status requests.Status) ([]requests.DesignRequest, error)
}
