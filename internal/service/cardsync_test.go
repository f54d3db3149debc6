package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"design-request-app/internal/domain/requests"
	"design-request-app/internal/infra/trello"
)

func insertRequest(t *testing.T, store *fakeStore, in NewRequest, images []string) string {
	t.Helper()
	rec := &requests.DesignRequest{
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
		ReferenceImages:  images,
		Status:           requests.StatusPending,
	}
	if err := store.Insert(context.Background(), rec); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	return rec.ID
}

func TestSyncCardHappyPath(t *testing.T) {
	svc, store, _, tracker := newTestService()
	images := []string{
		"https://cdn.example.test/a.png",
		"https://cdn.example.test/b.png",
	}
	id := insertRequest(t, store, validNewRequest(), images)

	if err := svc.SyncCard(context.Background(), id); err != nil {
		t.Fatalf("SyncCard failed: %v", err)
	}

	if len(tracker.createCalls) != 1 {
		t.Fatalf("got %d createCard calls, expected exactly 1", len(tracker.createCalls))
	}
	if len(tracker.attachCalls) != 2 {
		t.Fatalf("got %d attach calls, expected exactly 2", len(tracker.attachCalls))
	}
	for i, call := range tracker.attachCalls {
		if call.cardID != tracker.card.ID {
			t.Errorf("attach %d targeted card %q, expected %q", i, call.cardID, tracker.card.ID)
		}
		if call.url != images[i] {
			t.Errorf("attach %d url = %q, expected %q", i, call.url, images[i])
		}
	}

	rec, _ := store.Get(context.Background(), id)
	if rec.TrelloCardID == nil || *rec.TrelloCardID != tracker.card.ID {
		t.Error("trello_card_id not written back")
	}
	if rec.TrelloCardURL == nil || *rec.TrelloCardURL != tracker.card.URL {
		t.Error("trello_card_url not written back")
	}
}

func TestSyncCardComposition(t *testing.T) {
	svc, store, _, tracker := newTestService()
	in := validNewRequest() // urgent "Banner X", deadline 2025-01-10
	id := insertRequest(t, store, in, nil)

	if err := svc.SyncCard(context.Background(), id); err != nil {
		t.Fatalf("SyncCard failed: %v", err)
	}

	call := tracker.createCalls[0]
	if call.name != "[URGENT] Banner X" {
		t.Errorf("card name = %q, expected %q", call.name, "[URGENT] Banner X")
	}
	if got := call.due.Format(time.DateOnly); got != "2025-01-10" {
		t.Errorf("card due = %q, expected 2025-01-10", got)
	}
	for _, want := range []string{
		"**Requester:** Ana Souza (ana@example.com)",
		"**Department:** Marketing",
		"**Deadline:** 2025-01-10",
		"Request ID: " + id,
	} {
		if !strings.Contains(call.desc, want) {
			t.Errorf("card description missing %q:\n%s", want, call.desc)
		}
	}
	// no placeholder lines for absent optional fields
	for _, absent := range []string{"**Dimensions:**", "**Colors:**", "**References:**", "**Additional Notes:**", "N/A"} {
		if strings.Contains(call.desc, absent) {
			t.Errorf("card description contains %q for an empty field:\n%s", absent, call.desc)
		}
	}
}

func TestSyncCardOptionalFields(t *testing.T) {
	svc, store, _, tracker := newTestService()
	in := validNewRequest()
	in.Dimensions = "1080x1920"
	in.AdditionalNotes = "use the new logo"
	id := insertRequest(t, store, in, nil)

	if err := svc.SyncCard(context.Background(), id); err != nil {
		t.Fatalf("SyncCard failed: %v", err)
	}

	desc := tracker.createCalls[0].desc
	if !strings.Contains(desc, "**Dimensions:** 1080x1920") {
		t.Errorf("missing dimensions section:\n%s", desc)
	}
	if !strings.Contains(desc, "**Additional Notes:** use the new logo") {
		t.Errorf("missing additional notes section:\n%s", desc)
	}
	if strings.Contains(desc, "**Colors:**") {
		t.Errorf("unexpected colors section for empty field:\n%s", desc)
	}
}

func TestSyncCardNotConfigured(t *testing.T) {
	svc, store, _, tracker := newTestService()
	tracker.configured = false
	id := insertRequest(t, store, validNewRequest(), []string{"https://cdn.example.test/a.png"})

	err := svc.SyncCard(context.Background(), id)
	if !errors.Is(err, trello.ErrNotConfigured) {
		t.Fatalf("err = %v, expected ErrNotConfigured", err)
	}
	if len(tracker.createCalls) != 0 || len(tracker.attachCalls) != 0 {
		t.Error("no network calls expected when unconfigured")
	}

	rec, _ := store.Get(context.Background(), id)
	if rec.TrelloCardID != nil || rec.TrelloCardURL != nil {
		t.Error("card fields must stay unset")
	}
}

func TestSyncCardRecordNotFound(t *testing.T) {
	svc, _, _, tracker := newTestService()

	err := svc.SyncCard(context.Background(), "missing")
	if !errors.Is(err, requests.ErrNotFound) {
		t.Fatalf("err = %v, expected ErrNotFound", err)
	}
	if len(tracker.createCalls) != 0 {
		t.Error("no tracker calls expected for a missing record")
	}
}

func TestSyncCardTrackerRejected(t *testing.T) {
	svc, store, _, tracker := newTestService()
	tracker.createErr = &trello.APIError{StatusCode: 401, Body: "invalid token"}
	id := insertRequest(t, store, validNewRequest(), nil)

	err := svc.SyncCard(context.Background(), id)
	var apiErr *trello.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, expected *trello.APIError", err)
	}
	if apiErr.Body != "invalid token" {
		t.Errorf("response body not retained: %q", apiErr.Body)
	}
}

func TestSyncCardAttachFailureDoesNotAbort(t *testing.T) {
	svc, store, _, tracker := newTestService()
	images := []string{
		"https://cdn.example.test/a.png",
		"https://cdn.example.test/b.png",
		"https://cdn.example.test/c.png",
	}
	tracker.attachErrs[images[1]] = errors.New("attachment too large")
	id := insertRequest(t, store, validNewRequest(), images)

	if err := svc.SyncCard(context.Background(), id); err != nil {
		t.Fatalf("sync must survive an attach failure: %v", err)
	}
	if len(tracker.attachCalls) != 3 {
		t.Errorf("got %d attach calls, expected all 3 attempted", len(tracker.attachCalls))
	}

	rec, _ := store.Get(context.Background(), id)
	if rec.TrelloCardID == nil {
		t.Error("write-back must still happen after an attach failure")
	}
}

func TestSyncCardWriteBackFailure(t *testing.T) {
	svc, store, _, _ := newTestService()
	id := insertRequest(t, store, validNewRequest(), nil)
	store.updateErr = errors.New("write refused")

	// The card exists externally; accepted drift, the sync itself succeeds.
	if err := svc.SyncCard(context.Background(), id); err != nil {
		t.Fatalf("SyncCard must not fail on write-back: %v", err)
	}
}
