package services

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack-backend/internal/careplan"
	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/caretrack/caretrack-backend/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CarePlanService is the care-plan store: one record per resident, read
// whole, mutated only through ApplyPartialUpdate.
type CarePlanService struct {
	db    *gorm.DB
	icons storage.Resolver
}

func NewCarePlanService(db *gorm.DB, icons storage.Resolver) *CarePlanService {
	return &CarePlanService{db: db, icons: icons}
}

// Get returns the resident's full care plan, with the icon resolved from
// the parent resident.
func (s *CarePlanService) Get(residentID uuid.UUID) (*dto.CarePlanResponse, error) {
	var resident models.Resident
	if err := s.db.First(&resident, "id = ?", residentID).Error; err != nil {
		return nil, ErrResidentNotFound
	}

	var plan models.CarePlan
	if err := s.db.First(&plan, "resident_id = ?", residentID).Error; err != nil {
		return nil, ErrResidentNotFound
	}

	return s.planResponse(&plan, &resident), nil
}

// ApplyPartialUpdate is the sole care-plan mutation entry point. It merges
// the partial update against the stored record (see careplan.Merge for the
// per-field rules) and writes back both the plan and the resident's
// denormalized name/birthday/room_number in a single transaction, so the
// two copies cannot diverge.
func (s *CarePlanService) ApplyPartialUpdate(residentID, editorID uuid.UUID, upd careplan.Update) (*dto.CarePlanResponse, error) {
	var editor models.User
	if err := s.db.First(&editor, "id = ?", editorID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var plan models.CarePlan
	var resident models.Resident

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&resident, "id = ?", residentID).Error; err != nil {
			return ErrResidentNotFound
		}

		q := tx
		// Row lock so two concurrent editors merge serially instead of
		// last-write-wins over each other's fields. SQLite (tests) locks
		// the whole database per write transaction already.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&plan, "resident_id = ?", residentID).Error; err != nil {
			return ErrResidentNotFound
		}

		if _, err := careplan.Merge(&plan, upd, editorName(&editor), time.Now().UTC()); err != nil {
			return err
		}

		if err := tx.Save(&plan).Error; err != nil {
			return fmt.Errorf("failed to save care plan: %w", err)
		}

		denorm := map[string]interface{}{}
		if plan.Name != nil {
			denorm["name"] = *plan.Name
		}
		if plan.Birthday != nil {
			denorm["birthday"] = *plan.Birthday
		}
		if plan.RoomNumber != nil {
			denorm["room_number"] = *plan.RoomNumber
		}
		if len(denorm) > 0 {
			if err := tx.Model(&resident).Updates(denorm).Error; err != nil {
				return fmt.Errorf("failed to sync resident: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.planResponse(&plan, &resident), nil
}

// editorName is the display identity recorded in updated_by.
func editorName(u *models.User) string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

func (s *CarePlanService) planResponse(plan *models.CarePlan, resident *models.Resident) *dto.CarePlanResponse {
	resp := &dto.CarePlanResponse{
		ResidentID:         plan.ResidentID,
		Name:               plan.Name,
		Birthday:           plan.Birthday,
		RoomNumber:         plan.RoomNumber,
		CareInstructions:   plan.CareInstructions,
		MedicationSchedule: plan.MedicationSchedule,
		Age:                plan.Age,
		MedicalHistory:     plan.MedicalHistory,
		Allergies:          plan.Allergies,
		Medications:        plan.Medications,
		KeyContacts:        plan.KeyContacts,
		Support:            plan.Support,
		Behavior:           plan.Behavior,
		PersonalCare:       plan.PersonalCare,
		Mobility:           plan.Mobility,
		Sleep:              plan.Sleep,
		Nutrition:          plan.Nutrition,
		Updates:            plan.Updates.Data(),
		UpdatedBy:          plan.UpdatedBy,
	}
	if resp.Updates == nil {
		resp.Updates = map[string]time.Time{}
	}
	if resident.Icon != nil {
		url := s.icons.ResolveURL(*resident.Icon)
		resp.Icon = &url
	}
	return resp
}
