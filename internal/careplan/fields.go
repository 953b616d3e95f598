// Package careplan implements the care-plan field merge: a table-driven,
// per-field compare-and-conditionally-update over the fixed care-plan field
// set that also maintains the per-field last-changed timestamp map.
package careplan

import (
	"errors"
	"time"

	"github.com/caretrack/caretrack-backend/internal/models"
)

// ErrBadDate is returned when a birthday value cannot be parsed as a
// calendar date.
var ErrBadDate = errors.New("unparseable date")

// Update is a partial care-plan edit. A nil field means "not mentioned":
// the stored value and its timestamp entry are left untouched.
type Update struct {
	Name               *string `json:"name"`
	Birthday           *string `json:"birthday"`
	RoomNumber         *string `json:"room_number"`
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
}

// fieldSpec binds one care-plan field name to its accessors on the stored
// record and on an incoming Update. canonical, when set, normalizes a value
// before comparison and storage.
type fieldSpec struct {
	name      string
	get       func(*models.CarePlan) *string
	set       func(*models.CarePlan, string)
	incoming  func(*Update) *string
	canonical func(string) (string, error)
}

// fields is the complete care-plan field set. Every field the merge can
// touch is declared here exactly once; Merge never references a field
// directly.
var fields = []fieldSpec{
	{
		name:     "name",
		get:      func(p *models.CarePlan) *string { return p.Name },
		set:      func(p *models.CarePlan, v string) { p.Name = &v },
		incoming: func(u *Update) *string { return u.Name },
	},
	{
		name:      "birthday",
		get:       func(p *models.CarePlan) *string { return p.Birthday },
		set:       func(p *models.CarePlan, v string) { p.Birthday = &v },
		incoming:  func(u *Update) *string { return u.Birthday },
		canonical: NormalizeDate,
	},
	{
		name:     "room_number",
		get:      func(p *models.CarePlan) *string { return p.RoomNumber },
		set:      func(p *models.CarePlan, v string) { p.RoomNumber = &v },
		incoming: func(u *Update) *string { return u.RoomNumber },
	},
	{
		name:     "care_instructions",
		get:      func(p *models.CarePlan) *string { return p.CareInstructions },
		set:      func(p *models.CarePlan, v string) { p.CareInstructions = &v },
		incoming: func(u *Update) *string { return u.CareInstructions },
	},
	{
		name:     "medication_schedule",
		get:      func(p *models.CarePlan) *string { return p.MedicationSchedule },
		set:      func(p *models.CarePlan, v string) { p.MedicationSchedule = &v },
		incoming: func(u *Update) *string { return u.MedicationSchedule },
	},
	{
		name:     "age",
		get:      func(p *models.CarePlan) *string { return p.Age },
		set:      func(p *models.CarePlan, v string) { p.Age = &v },
		incoming: func(u *Update) *string { return u.Age },
	},
	{
		name:     "medical_history",
		get:      func(p *models.CarePlan) *string { return p.MedicalHistory },
		set:      func(p *models.CarePlan, v string) { p.MedicalHistory = &v },
		incoming: func(u *Update) *string { return u.MedicalHistory },
	},
	{
		name:     "allergies",
		get:      func(p *models.CarePlan) *string { return p.Allergies },
		set:      func(p *models.CarePlan, v string) { p.Allergies = &v },
		incoming: func(u *Update) *string { return u.Allergies },
	},
	{
		name:     "medications",
		get:      func(p *models.CarePlan) *string { return p.Medications },
		set:      func(p *models.CarePlan, v string) { p.Medications = &v },
		incoming: func(u *Update) *string { return u.Medications },
	},
	{
		name:     "key_contacts",
		get:      func(p *models.CarePlan) *string { return p.KeyContacts },
		set:      func(p *models.CarePlan, v string) { p.KeyContacts = &v },
		incoming: func(u *Update) *string { return u.KeyContacts },
	},
	{
		name:     "support",
		get:      func(p *models.CarePlan) *string { return p.Support },
		set:      func(p *models.CarePlan, v string) { p.Support = &v },
		incoming: func(u *Update) *string { return u.Support },
	},
	{
		name:     "behavior",
		get:      func(p *models.CarePlan) *string { return p.Behavior },
		set:      func(p *models.CarePlan, v string) { p.Behavior = &v },
		incoming: func(u *Update) *string { return u.Behavior },
	},
	{
		name:     "personal_care",
		get:      func(p *models.CarePlan) *string { return p.PersonalCare },
		set:      func(p *models.CarePlan, v string) { p.PersonalCare = &v },
		incoming: func(u *Update) *string { return u.PersonalCare },
	},
	{
		name:     "mobility",
		get:      func(p *models.CarePlan) *string { return p.Mobility },
		set:      func(p *models.CarePlan, v string) { p.Mobility = &v },
		incoming: func(u *Update) *string { return u.Mobility },
	},
	{
		name:     "sleep",
		get:      func(p *models.CarePlan) *string { return p.Sleep },
		set:      func(p *models.CarePlan, v string) { p.Sleep = &v },
		incoming: func(u *Update) *string { return u.Sleep },
	},
	{
		name:     "nutrition",
		get:      func(p *models.CarePlan) *string { return p.Nutrition },
		set:      func(p *models.CarePlan, v string) { p.Nutrition = &v },
		incoming: func(u *Update) *string { return u.Nutrition },
	},
}

// FieldNames returns the declared field set in table order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// dateLayouts are accepted birthday inputs, tried in order. Clients send
// either a plain calendar date or a full timestamp.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeDate reduces a date input to its YYYY-MM-DD calendar date,
// stripping time-of-day and timezone, so that equivalent dates expressed
// with different timestamps compare equal.
func NormalizeDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", ErrBadDate
}
