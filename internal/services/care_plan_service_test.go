package services

import (
	"testing"

	"github.com/caretrack/caretrack-backend/internal/careplan"
	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/caretrack/caretrack-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarePlanGetUnknownResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrResidentNotFound)
}

func TestCarePlanStartsWithDemographicsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")

	plan, err := svc.Get(resident.ID)
	require.NoError(t, err)

	require.NotNil(t, plan.Name)
	assert.Equal(t, "Ada Byrne", *plan.Name)
	require.NotNil(t, plan.Birthday)
	assert.Equal(t, "1940-06-15", *plan.Birthday)
	require.NotNil(t, plan.RoomNumber)
	assert.Equal(t, "12", *plan.RoomNumber)

	assert.Nil(t, plan.MedicalHistory)
	assert.Nil(t, plan.UpdatedBy)
	assert.Empty(t, plan.Updates)
	assert.NotNil(t, plan.Updates)
}

func TestApplyPartialUpdatePersists(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")
	editor := seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	history := "hip replacement 2019"
	allergies := "penicillin"
	_, err := svc.ApplyPartialUpdate(resident.ID, editor.ID, careplan.Update{
		MedicalHistory: &history,
		Allergies:      &allergies,
	})
	require.NoError(t, err)

	plan, err := svc.Get(resident.ID)
	require.NoError(t, err)

	require.NotNil(t, plan.MedicalHistory)
	assert.Equal(t, history, *plan.MedicalHistory)
	require.NotNil(t, plan.Allergies)
	assert.Equal(t, allergies, *plan.Allergies)

	assert.Contains(t, plan.Updates, "medical_history")
	assert.Contains(t, plan.Updates, "allergies")
	assert.NotContains(t, plan.Updates, "name")

	require.NotNil(t, plan.UpdatedBy)
	assert.Equal(t, "Jane Doe", *plan.UpdatedBy)
}

func TestApplyPartialUpdateStampsOnlyChangedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")
	editor := seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	allergies := "penicillin"
	_, err := svc.ApplyPartialUpdate(resident.ID, editor.ID, careplan.Update{Allergies: &allergies})
	require.NoError(t, err)

	first, err := svc.Get(resident.ID)
	require.NoError(t, err)
	firstStamp := first.Updates["allergies"]

	history := "hip replacement 2019"
	_, err = svc.ApplyPartialUpdate(resident.ID, editor.ID, careplan.Update{
		Allergies:      &allergies,
		MedicalHistory: &history,
	})
	require.NoError(t, err)

	plan, err := svc.Get(resident.ID)
	require.NoError(t, err)

	assert.Equal(t, firstStamp, plan.Updates["allergies"])
	assert.Contains(t, plan.Updates, "medical_history")
}

func TestApplyPartialUpdateSyncsResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")
	editor := seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	name := "Ada Byrne-Smith"
	room := "14b"
	_, err := svc.ApplyPartialUpdate(resident.ID, editor.ID, careplan.Update{
		Name:       &name,
		RoomNumber: &room,
	})
	require.NoError(t, err)

	var stored models.Resident
	require.NoError(t, db.First(&stored, "id = ?", resident.ID).Error)
	assert.Equal(t, name, stored.Name)
	assert.Equal(t, room, stored.RoomNumber)
	assert.Equal(t, "1940-06-15", stored.Birthday)
}

func TestApplyPartialUpdateEquivalentBirthdayNotStamped(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")
	editor := seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	birthday := "1940-06-15T00:00:00Z"
	plan, err := svc.ApplyPartialUpdate(resident.ID, editor.ID, careplan.Update{Birthday: &birthday})
	require.NoError(t, err)

	assert.NotContains(t, plan.Updates, "birthday")
	require.NotNil(t, plan.Birthday)
	assert.Equal(t, "1940-06-15", *plan.Birthday)

	// The edit still records who touched the plan last.
	require.NotNil(t, plan.UpdatedBy)
	assert.Equal(t, "Jane Doe", *plan.UpdatedBy)
}

func TestApplyPartialUpdateBadBirthday(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")
	editor := seedUser(t, db, "jane@example.com", "Jane Doe", models.StatusApproved)

	bad := "next tuesday"
	_, err := svc.ApplyPartialUpdate(resident.ID, editor.ID, careplan.Update{Birthday: &bad})
	assert.ErrorIs(t, err, careplan.ErrBadDate)

	// The failed edit must not leave partial state behind.
	plan, err := svc.Get(resident.ID)
	require.NoError(t, err)
	assert.Nil(t, plan.UpdatedBy)
	assert.Empty(t, plan.Updates)
}

func TestApplyPartialUpdateUnknownEditor(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")

	v := "x"
	_, err := svc.ApplyPartialUpdate(resident.ID, uuid.New(), careplan.Update{Sleep: &v})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApplyPartialUpdateFallsBackToEditorEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarePlanService(db, storage.NewBaseURLResolver(""))

	resident := seedResident(t, db, "Ada Byrne", "1940-06-15", "12")
	editor := seedUser(t, db, "noname@example.com", "", models.StatusApproved)

	v := "sleeps well"
	plan, err := svc.ApplyPartialUpdate(resident.ID, editor.ID, careplan.Update{Sleep: &v})
	require.NoError(t, err)

	require.NotNil(t, plan.UpdatedBy)
	assert.Equal(t, "noname@example.com", *plan.UpdatedBy)
}
