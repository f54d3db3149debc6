package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"design-request-app/internal/domain/requests"
	"design-request-app/internal/infra/trello"
)

// SyncCard mirrors one request as a Trello card: create the card at the top
// of the configured list, attach each reference image best-effort, then write
// the card id/url back onto the record.
//
// Errors are terminal for this attempt and never retried here; the outer
// caller decides (intake logs and continues, the manual re-sync endpoint
// surfaces them). Re-running after a prior success creates a second card —
// known and accepted, reconciliation is a human step.
func (s *Service) SyncCard(ctx context.Context, id string) error {
	req, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if !s.tracker.Configured() {
		return trello.ErrNotConfigured
	}

	card, err := s.tracker.CreateCard(ctx, cardName(req), cardDescription(req), req.Deadline)
	if err != nil {
		return err
	}

	for _, imageURL := range req.ReferenceImages {
		if err := s.tracker.AttachURL(ctx, card.ID, imageURL); err != nil {
			log.Printf("⚠️ Failed to attach %s to card %s: %v", imageURL, card.ID, err)
		}
	}

	err = s.store.Update(ctx, id, map[string]interface{}{
		"trello_card_id":  card.ID,
		"trello_card_url": card.URL,
	})
	if err != nil {
		// The card already exists externally; the drift is visible in the
		// dashboard (missing card link) and fixed by hand.
		log.Printf("⚠️ Card %s created but write-back failed for request %s: %v", card.ID, id, err)
	}

	return nil
}

func cardName(req *requests.DesignRequest) string {
	return fmt.Sprintf("[%s] %s", strings.ToUpper(string(req.Priority)), req.Title)
}

// cardDescription renders the brief as the card body. Optional fields that
// are empty contribute nothing — no placeholder lines.
func cardDescription(req *requests.DesignRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Requester:** %s (%s)\n", req.RequesterName, req.RequesterEmail)
	fmt.Fprintf(&b, "**Department:** %s\n", req.Department)
	fmt.Fprintf(&b, "**Type:** %s\n\n", req.RequestType)

	fmt.Fprintf(&b, "**Description:**\n%s\n\n", req.Description)
	fmt.Fprintf(&b, "**Objective:**\n%s\n\n", req.Objective)
	fmt.Fprintf(&b, "**Target Audience:**\n%s\n\n", req.TargetAudience)

	fmt.Fprintf(&b, "**Deadline:** %s\n", req.Deadline.Format(time.DateOnly))
	fmt.Fprintf(&b, "**Priority:** %s\n\n", req.Priority)

	if req.Dimensions != "" {
		fmt.Fprintf(&b, "**Dimensions:** %s\n", req.Dimensions)
	}
	if req.ColorPreferences != "" {
		fmt.Fprintf(&b, "**Colors:** %s\n", req.ColorPreferences)
	}
	if req.ReferenceLinks != "" {
		fmt.Fprintf(&b, "**References:** %s\n", req.ReferenceLinks)
	}
	if req.AdditionalNotes != "" {
		fmt.Fprintf(&b, "**Additional Notes:** %s\n", req.AdditionalNotes)
	}

	fmt.Fprintf(&b, "\n---\nRequest ID: %s\n", req.ID)

	return b.String()
}
