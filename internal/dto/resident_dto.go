package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateResidentRequest struct {
	Name       string  `json:"name"`
	Birthday   string  `json:"birthday"`
	RoomNumber string  `json:"room_number"`
	Icon       *string `json:"icon"`
}

type UpdateIconRequest struct {
	Icon string `json:"icon"`
}

type ResidentResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Birthday   string    `json:"birthday"`
	RoomNumber string    `json:"room_number"`
	Icon       *string   `json:"icon,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResidentListResponse struct {
	Residents []ResidentResponse `json:"residents"`
}

type StaffListResponse struct {
	StaffMembers []UserResponse `json:"staff_members"`
}
