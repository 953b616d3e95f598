package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"

	StatusPending  = "pending"
	StatusApproved = "approved"
)

// User is a staff account. Accounts are self-registered in pending status
// and must be approved by an admin before they can log in.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	JobTitle  string    `gorm:"size:100" json:"job_title"`
	Role      string    `gorm:"size:20;default:'staff'" json:"role"`
	Status    string    `gorm:"size:20;default:'pending';index" json:"status"`
	Icon      *string   `gorm:"size:512" json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// adminJobTitles are the job titles that grant the admin role at registration.
var adminJobTitles = map[string]bool{
	"manager":      true,
	"nurse":        true,
	"senior carer": true,
}

// RoleForJobTitle maps a registration job title to an account role.
func RoleForJobTitle(jobTitle string) string {
	if adminJobTitles[jobTitle] {
		return RoleAdmin
	}
	return RoleStaff
}
