package dto

import (
	"time"

	"github.com/google/uuid"
)

// CarePlanResponse is the flat wire shape of a care plan: the plan's own
// fields plus the parent resident's icon, with the updates map rendered as
// field name to ISO-8601 timestamp.
type CarePlanResponse struct {
	ResidentID uuid.UUID `json:"resident_id"`

	Name       *string `json:"name"`
	Birthday   *string `json:"birthday"`
	RoomNumber *string `json:"room_number"`

	CareInstructions   *string `json:"care_instructions"`
	MedicationSchedule *string `json:"medication_schedule"`
	Age                *string `json:"age"`
	MedicalHistory     *string `json:"medical_history"`
	Allergies          *string `json:"allergies"`
	Medications        *string `json:"medications"`
	KeyContacts        *string `json:"key_contacts"`
	Support            *string `json:"support"`
	Behavior           *string `json:"behavior"`
	PersonalCare       *string `json:"personal_care"`
	Mobility           *string `json:"mobility"`
	Sleep              *string `json:"sleep"`
	Nutrition          *string `json:"nutrition"`

	Updates   map[string]time.Time `json:"updates"`
	UpdatedBy *string              `json:"updated_by"`
	Icon      *string              `json:"icon,omitempty"`
}
