package service

import (
	"context"
	"time"

	"design-request-app/internal/domain/requests"
	"design-request-app/internal/infra/trello"
	"design-request-app/internal/repository"
)

// BlobStore stores attachment payloads and resolves stable public URLs.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	PublicURL(key string) string
}

// Tracker is the external task board requests are mirrored onto.
type Tracker interface {
	Configured() bool
	CreateCard(ctx context.Context, name, desc string, due time.Time) (*trello.Card, error)
	AttachURL(ctx context.Context, cardID, url string) error
}

// Attachment is one user-supplied reference file.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// NewRequest carries the validated form fields of a submission.
type NewRequest struct {
	RequesterName  string
	RequesterEmail string
	Department     string
	RequestType    requests.RequestType

	Title          string
	Description    string
	Objective      string
	TargetAudience string

	Deadline time.Time
	Priority requests.Priority

	Dimensions       string
	ColorPreferences string
	ReferenceLinks   string
	AdditionalNotes  string
}

// Service bundles the request lifecycle workflows: intake, card sync and
// status management.
type Service struct {
	store   repository.RequestStore
	blobs   BlobStore
	tracker Tracker
}

func New(store repository.RequestStore, blobs BlobStore, tracker Tracker) *Service {
	return &Service{
		store:   store,
		blobs:   blobs,
		tracker: tracker,
	}
}
