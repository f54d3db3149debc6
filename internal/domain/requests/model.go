package requests

import (
	"time"
)

type RequestType string

const (
	TypeSocialMedia  RequestType = "social_media"
	TypePrint        RequestType = "print"
	TypeDigital      RequestType = "digital"
	TypeBranding     RequestType = "branding"
	TypePresentation RequestType = "presentation"
	TypeOther        RequestType = "other"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// DesignRequest is the internal source of truth for one submitted brief.
// The Trello card is a one-way mirror: trello_card_id/url are written once
// after the first successful sync and never reconciled with later edits on
// the Trello side.
type DesignRequest struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	RequesterName  string      `gorm:"not null" json:"requester_name"`
	RequesterEmail string      `gorm:"not null" json:"requester_email"`
	Department     string      `gorm:"not null" json:"department"`
	RequestType    RequestType `gorm:"type:varchar(20);not null" json:"request_type"`

	Title          string `gorm:"not null" json:"title"`
	Description    string `gorm:"type:text;not null" json:"description"`
	Objective      string `gorm:"type:text;not null" json:"objective"`
	TargetAudience string `gorm:"not null" json:"target_audience"`

	Deadline time.Time `gorm:"type:date;not null" json:"deadline"`
	Priority Priority  `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`

	Dimensions       string `json:"dimensions,omitempty"`
	ColorPreferences string `json:"color_preferences,omitempty"`
	ReferenceLinks   string `gorm:"type:text" json:"reference_links,omitempty"`
	AdditionalNotes  string `gorm:"type:text" json:"additional_notes,omitempty"`

	// Upload order, which is the order the requester picked the files in.
	ReferenceImages []string `gorm:"serializer:json;type:jsonb" json:"reference_images"`

	Status Status `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	TrelloCardID  *string `gorm:"column:trello_card_id" json:"trello_card_id,omitempty"`
	TrelloCardURL *string `gorm:"column:trello_card_url" json:"trello_card_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DesignRequest) TableName() string {
	return "design_requests"
}

func (t RequestType) Valid() bool {
	switch t {
	case TypeSocialMedia, TypePrint, TypeDigital, TypeBranding, TypePresentation, TypeOther:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
