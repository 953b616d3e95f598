package models

import (
	"time"

	"github.com/caretrack/caretrack-backend/internal/feed"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeedPost is a categorized note logged against a resident: vitals,
// observations, personal care, incidents. Body-map posts carry a focal
// point and incident posts carry structured report sections; both are
// persisted as JSON next to the free-text message and folded back into
// the legacy one-string wire encoding only at the HTTP boundary.
type FeedPost struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentID uuid.UUID `gorm:"type:uuid;not null;index" json:"resident_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"posted_by"`
	Category   string    `gorm:"size:50;not null;index" json:"type"`
	Message    string    `gorm:"type:text" json:"message"`

	Point    *datatypes.JSONType[feed.Point]            `json:"point,omitempty"`
	Sections *datatypes.JSONType[feed.IncidentSections] `json:"sections,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
