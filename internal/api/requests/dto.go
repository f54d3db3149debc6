package requests

import (
	"fmt"
	"time"

	domain "design-request-app/internal/domain/requests"
	"design-request-app/internal/service"

	"github.com/microcosm-cc/bluemonday"
)

// ---------- requests

type SubmitRequestForm struct {
	RequesterName  string `form:"requester_name" binding:"required"`
	RequesterEmail string `form:"requester_email" binding:"required,email"`
	Department     string `form:"department" binding:"required"`
	RequestType    string `form:"request_type" binding:"required"`

	Title          string `form:"title" binding:"required"`
	Description    string `form:"description" binding:"required"`
	Objective      string `form:"objective" binding:"required"`
	TargetAudience string `form:"target_audience" binding:"required"`

	Deadline string `form:"deadline" binding:"required"` // YYYY-MM-DD
	Priority string `form:"priority" binding:"required"`

	Dimensions       string `form:"dimensions"`
	ColorPreferences string `form:"color_preferences"`
	ReferenceLinks   string `form:"reference_links"`
	AdditionalNotes  string `form:"additional_notes"`
}

// strict policy, same as the JSON sanitize middleware; multipart fields don't
// pass through that middleware so the form cleans itself
var sanitizePolicy = bluemonday.StrictPolicy()

// ToNewRequest validates enum fields and the deadline and sanitizes every
// free-text field. Runs before any side effect.
func (f SubmitRequestForm) ToNewRequest() (service.NewRequest, error) {
	requestType := domain.RequestType(f.RequestType)
	if !requestType.Valid() {
		return service.NewRequest{}, fmt.Errorf("invalid request_type %q", f.RequestType)
	}

	priority := domain.Priority(f.Priority)
	if !priority.Valid() {
		return service.NewRequest{}, fmt.Errorf("invalid priority %q", f.Priority)
	}

	deadline, err := time.Parse(time.DateOnly, f.Deadline)
	if err != nil {
		return service.NewRequest{}, fmt.Errorf("invalid deadline %q, expected YYYY-MM-DD", f.Deadline)
	}

	clean := sanitizePolicy.Sanitize

	return service.NewRequest{
		RequesterName:    clean(f.RequesterName),
		RequesterEmail:   clean(f.RequesterEmail),
		Department:       clean(f.Department),
		RequestType:      requestType,
		Title:            clean(f.Title),
		Description:      clean(f.Description),
		Objective:        clean(f.Objective),
		TargetAudience:   clean(f.TargetAudience),
		Deadline:         deadline,
		Priority:         priority,
		Dimensions:       clean(f.Dimensions),
		ColorPreferences: clean(f.ColorPreferences),
		ReferenceLinks:   clean(f.ReferenceLinks),
		AdditionalNotes:  clean(f.AdditionalNotes),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ---------- responses

type RequestResponse struct {
	ID             string `json:"id"`
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	Department     string `json:"department"`
	RequestType    string `json:"request_type"`

	Title          string `json:"title"`
	Description    string `json:"description"`
	Objective      string `json:"objective"`
	TargetAudience string `json:"target_audience"`

	Deadline string `json:"deadline"`
	Priority string `json:"priority"`

	Dimensions       string `json:"dimensions,omitempty"`
	ColorPreferences string `json:"color_preferences,omitempty"`
	ReferenceLinks   string `json:"reference_links,omitempty"`
	AdditionalNotes  string `json:"additional_notes,omitempty"`

	ReferenceImages []string `json:"reference_images"`

	Status string `json:"status"`

	TrelloCardID  *string `json:"trello_card_id,omitempty"`
	TrelloCardURL *string `json:"trello_card_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(r domain.DesignRequest) RequestResponse {
	images := r.ReferenceImages
	if images == nil {
		images = []string{}
	}

	return RequestResponse{
		ID:               r.ID,
		RequesterName:    r.RequesterName,
		RequesterEmail:   r.RequesterEmail,
		Department:       r.Department,
		RequestType:      string(r.RequestType),
		Title:            r.Title,
		Description:      r.Description,
		Objective:        r.Objective,
		TargetAudience:   r.TargetAudience,
		Deadline:         r.Deadline.Format(time.DateOnly),
		Priority:         string(r.Priority),
		Dimensions:       r.Dimensions,
		ColorPreferences: r.ColorPreferences,
		ReferenceLinks:   r.ReferenceLinks,
		AdditionalNotes:  r.AdditionalNotes,
		ReferenceImages:  images,
		Status:           string(r.Status),
		TrelloCardID:     r.TrelloCardID,
		TrelloCardURL:    r.TrelloCardURL,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
