package repository

import (
	"context"
	"errors"

	"design-request-app/internal/domain/requests"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// insufficient_privilege, what a row-level security rejection surfaces as
const pgInsufficientPrivilege = "42501"

type GormRequestStore struct {
	db *gorm.DB
}

func NewGormRequestStore(db *gorm.DB) *GormRequestStore {
	return &GormRequestStore{db: db}
}

var _ RequestStore = (*GormRequestStore)(nil)

func (s *GormRequestStore) Insert(ctx context.Context, req *requests.DesignRequest) error {
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *GormRequestStore) Get(ctx context.Context, id string) (*requests.DesignRequest, error) {
	var req requests.DesignRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &req, nil
}

func (s *GormRequestStore) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res := s.db.WithContext(ctx).
		Model(&requests.DesignRequest{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return mapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return requests.ErrNotFound
	}
	return nil
}

func (s *GormRequestStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&requests.DesignRequest{})
	if res.Error != nil {
		return mapStoreError(res.Error)
	}
	if res.RowsAffected == 0 {
		return requests.ErrNotFound
	}
	return nil
}

func (s *GormRequestStore) List(ctx context.Context, status requests.Status) ([]requests.DesignRequest, error) {
	q := s.db.WithContext(ctx).Model(&requests.DesignRequest{}).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []requests.DesignRequest
	if err := q.Find(&out).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return out, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requests.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInsufficientPrivilege {
		return requests.ErrPermissionDenied
	}
	return err
}
