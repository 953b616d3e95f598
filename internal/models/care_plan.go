package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CarePlan is the structured clinical/narrative record for a resident,
// one-to-one with Resident and lifecycle-bound to it. All plan fields are
// nullable: they start unset at resident creation and are filled in over
// time by staff.
//
// Updates maps field name to the time that field last actually changed.
// Fields never edited are absent from the map; entries are added but never
// removed, and a timestamp is refreshed only when the stored value really
// differs (see the careplan package for the merge rules).
type CarePlan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"resident_id"`

	Name       *string `gorm:"size:255" json:"name"`
	Birthday   *string `gorm:"size:10" json:"birthday"`
	RoomNumber *string `gorm:"size:50" json:"room_number"`

	CareInstructions   *string `gorm:"type:text" json:"care_instructions"`
	MedicationSchedule *string `gorm:"type:text" json:"medication_schedule"`
	Age                *string `gorm:"size:10" json:"age"`
	MedicalHistory     *string `gorm:"type:text" json:"medical_history"`
	Allergies          *string `gorm:"type:text" json:"allergies"`
	Medications        *string `gorm:"type:text" json:"medications"`
	KeyContacts        *string `gorm:"type:text" json:"key_contacts"`
	Support            *string `gorm:"type:text" json:"support"`
	Behavior           *string `gorm:"type:text" json:"behavior"`
	PersonalCare       *string `gorm:"type:text" json:"personal_care"`
	Mobility           *string `gorm:"type:text" json:"mobility"`
	Sleep              *string `gorm:"type:text" json:"sleep"`
	Nutrition          *string `gorm:"type:text" json:"nutrition"`

	Updates   datatypes.JSONType[map[string]time.Time] `json:"updates"`
	UpdatedBy *string                                  `gorm:"size:255" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
