package service

import (
	"context"
	"fmt"
	"time"

	"design-request-app/internal/domain/requests"
	"design-request-app/internal/infra/trello"
)

// ---------- record store fake

type fakeStore struct {
	records map[string]*requests.DesignRequest
	order   []string
	nextID  int

	insertErr error
	updateErr error
	deleteErr error

	updates []map[string]interface{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*requests.DesignRequest{}}
}

func (f *fakeStore) Insert(_ context.Context, req *requests.DesignRequest) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	req.ID = fmt.Sprintf("req-%d", f.nextID)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	cp := *req
	f.records[req.ID] = &cp
	f.order = append(f.order, req.ID)
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*requests.DesignRequest, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, requests.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStore) Update(_ context.Context, id string, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	rec, ok := f.records[id]
	if !ok {
		return requests.ErrNotFound
	}
	f.updates = append(f.updates, fields)
	if v, ok := fields["status"].(requests.Status); ok {
		rec.Status = v
	}
	if v, ok := fields["trello_card_id"].(string); ok {
		rec.TrelloCardID = &v
	}
	if v, ok := fields["trello_card_url"].(string); ok {
		rec.TrelloCardURL = &v
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.records[id]; !ok {
		return requests.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeStore) List(_ context.Context, status requests.Status) ([]requests.DesignRequest, error) {
	var out []requests.DesignRequest
	for i := len(f.order) - 1; i >= 0; i-- {
		rec, ok := f.records[f.order[i]]
		if !ok {
			continue
		}
		if status != "" && rec.Status != status {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

// ---------- blob store fake

type fakeBlobStore struct {
	puts     []string // keys in Put order
	failData map[string]bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{failData: map[string]bool{}}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, _ string, data []byte) error {
	if f.failData[string(data)] {
		return fmt.Errorf("blob store rejected %s", key)
	}
	f.puts = append(f.puts, key)
	return nil
}

func (f *fakeBlobStore) PublicURL(key string) string {
	return "https://cdn.example.test/" + key
}

// ---------- tracker fake

type createCall struct {
	name string
	desc string
	due  time.Time
}

type attachCall struct {
	cardID string
	url    string
}

type fakeTracker struct {
	configured bool
	card       trello.Card

	createErr  error
	attachErrs map[string]error // by attached url

	createCalls []createCall
	attachCalls []attachCall
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{
		configured: true,
		card:       trello.Card{ID: "card-1", URL: "https://trello.example.test/c/card-1"},
		attachErrs: map[string]error{},
	}
}

func (f *fakeTracker) Configured() bool { return f.configured }

func (f *fakeTracker) CreateCard(_ context.Context, name, desc string, due time.Time) (*trello.Card, error) {
	f.createCalls = append(f.createCalls, createCall{name: name, desc: desc, due: due})
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := f.card
	return &cp, nil
}

func (f *fakeTracker) AttachURL(_ context.Context, cardID, url string) error {
	f.attachCalls = append(f.attachCalls, attachCall{cardID: cardID, url: url})
	return f.attachErrs[url]
}

// ---------- helpers

func newTestService() (*Service, *fakeStore, *fakeBlobStore, *fakeTracker) {
	store := newFakeStore()
	blobs := newFakeBlobStore()
	tracker := newFakeTracker()
	return New(store, blobs, tracker), store, blobs, tracker
}

func validNewRequest() NewRequest {
	return NewRequest{
		RequesterName:  "Ana Souza",
		RequesterEmail: "ana@example.com",
		Department:     "Marketing",
		RequestType:    requests.TypeSocialMedia,
		Title:          "Banner X",
		Description:    "A launch banner",
		Objective:      "Announce the launch",
		TargetAudience: "Existing customers",
		Deadline:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Priority:       requests.PriorityUrgent,
	}
}
