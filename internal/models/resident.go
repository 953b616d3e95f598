package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resident is a care-home resident. Name, birthday and room number are
// denormalized copies of the same fields on the care plan and must be kept
// consistent with it (see services.CarePlanService.ApplyPartialUpdate).
// Residents are soft-deleted; their care plan and feed posts are not.
type Resident struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"not null;size:255" json:"name"`
	Birthday   string         `gorm:"size:10" json:"birthday"`
	RoomNumber string         `gorm:"size:50" json:"room_number"`
	Icon       *string        `gorm:"size:512" json:"icon,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
