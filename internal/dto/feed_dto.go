package dto

import (
	"time"

	"github.com/caretrack/caretrack-backend/internal/feed"
	"github.com/google/uuid"
)

type CreateFeedPostRequest struct {
	Category string                 `json:"type"`
	Message  string                 `json:"message"`
	Point    *feed.Point            `json:"point"`
	Sections *feed.IncidentSections `json:"sections"`
}

type UpdateFeedPostRequest struct {
	Message string      `json:"message"`
	Point   *feed.Point `json:"point"`
}

// FeedPostResponse renders a post for the wire. Message carries the legacy
// one-string encoding for body-map and incident posts so existing clients
// keep working; the structured point and sections ride alongside it.
type FeedPostResponse struct {
	ID           uuid.UUID              `json:"id"`
	ResidentID   uuid.UUID              `json:"resident_id"`
	Category     string                 `json:"type"`
	Message      string                 `json:"message"`
	Point        *feed.Point            `json:"point,omitempty"`
	Sections     *feed.IncidentSections `json:"sections,omitempty"`
	PostedBy     uuid.UUID              `json:"posted_by"`
	PostedByName string                 `json:"posted_by_name"`
	PostedByRole string                 `json:"posted_by_role"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type FeedListResponse struct {
	Success bool               `json:"success"`
	Data    []FeedPostResponse `json:"data"`
	Message string             `json:"message"`
}
