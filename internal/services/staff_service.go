package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffService manages the staff lifecycle that gates write access:
// pending registrations are approved or declined by an admin, and staff
// members can be removed along with everything they posted.
type StaffService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewStaffService(db *gorm.DB, mailer Mailer) *StaffService {
	return &StaffService{db: db, mailer: mailer}
}

// List returns all staff members except the caller.
func (s *StaffService) List(excludeID uuid.UUID) ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Where("id != ?", excludeID).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, userResponse(&users[i]))
	}
	return result, nil
}

// Approve transitions a pending account to approved and notifies the user.
func (s *StaffService) Approve(userID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if err := s.db.Model(&user).Update("status", models.StatusApproved).Error; err != nil {
		return fmt.Errorf("failed to approve staff: %w", err)
	}

	if err := s.mailer.Send(context.Background(), user.Email, "Registration",
		"<h2>You have been successfully approved by an admin. Please login to start using Care Track Central.</h2>",
		"You have been approved by an admin. Please log in to start using Care Track Central.",
	); err != nil {
		slog.Error("approval email failed", "error", err, "user_id", user.ID.String())
	}
	return nil
}

// Decline removes a pending registration.
func (s *StaffService) Decline(userID uuid.UUID) error {
	return s.remove(userID)
}

// Remove deletes a staff member and every feed post they authored.
func (s *StaffService) Remove(userID uuid.UUID) error {
	return s.remove(userID)
}

func (s *StaffService) remove(userID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", userID).Delete(&models.FeedPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
