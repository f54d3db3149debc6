package service

import (
	"context"
	"fmt"
	"log"

	"design-request-app/internal/domain/requests"
)

// SubmitRequest uploads the attachments, inserts the request record and
// mirrors it onto the tracker, strictly in that order. Only the insert
// decides the outcome: upload failures shrink reference_images, and a failed
// sync is logged for operational follow-up while the requester still gets a
// success. The internal record is the source of truth, the card is a
// convenience mirror.
func (s *Service) SubmitRequest(ctx context.Context, in NewRequest, files []Attachment) (string, error) {
	// Detached from the caller's cancellation: aborting an upload mid-write
	// would leave orphaned blobs with no referencing record.
	ctx = context.WithoutCancel(ctx)

	urls := s.UploadAttachments(ctx, files)

	req := &requests.DesignRequest{
		RequesterName:    in.RequesterName,
		RequesterEmail:   in.RequesterEmail,
		Department:       in.Department,
		RequestType:      in.RequestType,
		Title:            in.Title,
		Description:      in.Description,
		Objective:        in.Objective,
		TargetAudience:   in.TargetAudience,
		Deadline:         in.Deadline,
		Priority:         in.Priority,
		Dimensions:       in.Dimensions,
		ColorPreferences: in.ColorPreferences,
		ReferenceLinks:   in.ReferenceLinks,
		AdditionalNotes:  in.AdditionalNotes,
		ReferenceImages:  urls,
		Status:           requests.StatusPending,
	}

	if err := s.store.Insert(ctx, req); err != nil {
		return "", fmt.Errorf("failed to insert design request: %w", err)
	}

	if err := s.SyncCard(ctx, req.ID); err != nil {
		log.Printf("⚠️ Trello sync failed for request %s: %v", req.ID, err)
	}

	return req.ID, nil
}
