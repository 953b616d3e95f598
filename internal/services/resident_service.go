package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/caretrack/caretrack-backend/internal/careplan"
	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/caretrack/caretrack-backend/internal/storage"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrResidentNotFound = errors.New("resident not found")

type ResidentService struct {
	db    *gorm.DB
	icons storage.Resolver
}

func NewResidentService(db *gorm.DB, icons storage.Resolver) *ResidentService {
	return &ResidentService{db: db, icons: icons}
}

// Create registers a resident and their initial care plan in one
// transaction. The plan starts with the demographic fields copied from the
// resident, every clinical/narrative field unset, an empty updates map and
// no editor.
func (s *ResidentService) Create(req *dto.CreateResidentRequest) (*dto.ResidentResponse, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	birthday, err := careplan.NormalizeDate(req.Birthday)
	if err != nil {
		return nil, fmt.Errorf("birthday: %w", err)
	}

	resident := models.Resident{
		ID:         uuid.New(),
		Name:       req.Name,
		Birthday:   birthday,
		RoomNumber: req.RoomNumber,
		Icon:       req.Icon,
	}

	plan := models.CarePlan{
		ID:         uuid.New(),
		ResidentID: resident.ID,
		Name:       &resident.Name,
		Birthday:   &resident.Birthday,
		RoomNumber: &resident.RoomNumber,
		Updates:    datatypes.NewJSONType(map[string]time.Time{}),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&resident).Error; err != nil {
			return err
		}
		return tx.Create(&plan).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resident: %w", err)
	}

	resp := s.residentResponse(&resident)
	return &resp, nil
}

// List returns all residents that have not been soft-deleted.
func (s *ResidentService) List() ([]dto.ResidentResponse, error) {
	var residents []models.Resident
	if err := s.db.Order("created_at ASC").Find(&residents).Error; err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}

	result := make([]dto.ResidentResponse, 0, len(residents))
	for i := range residents {
		result = append(result, s.residentResponse(&residents[i]))
	}
	return result, nil
}

// Delete soft-deletes the resident and physically removes their care plan
// and feed entries, all in one transaction.
func (s *ResidentService) Delete(residentID uuid.UUID) error {
	var resident models.Resident
	if err := s.db.First(&resident, "id = ?", residentID).Error; err != nil {
		return ErrResidentNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resident_id = ?", residentID).Delete(&models.CarePlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resident_id = ?", residentID).Delete(&models.FeedPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&resident).Error
	})
}

// UpdateIcon replaces the resident's icon reference.
func (s *ResidentService) UpdateIcon(residentID uuid.UUID, ref string) (*dto.ResidentResponse, error) {
	var resident models.Resident
	if err := s.db.First(&resident, "id = ?", residentID).Error; err != nil {
		return nil, ErrResidentNotFound
	}

	if err := s.db.Model(&resident).Update("icon", ref).Error; err != nil {
		return nil, fmt.Errorf("failed to update icon: %w", err)
	}
	resident.Icon = &ref

	resp := s.residentResponse(&resident)
	return &resp, nil
}

func (s *ResidentService) residentResponse(r *models.Resident) dto.ResidentResponse {
	resp := dto.ResidentResponse{
		ID:         r.ID,
		Name:       r.Name,
		Birthday:   r.Birthday,
		RoomNumber: r.RoomNumber,
		CreatedAt:  r.CreatedAt,
	}
	if r.Icon != nil {
		url := s.icons.ResolveURL(*r.Icon)
		resp.Icon = &url
	}
	return resp
}
