package services

import (
	"context"
	"testing"
	"time"

	"github.com/caretrack/caretrack-backend/internal/config"
	"github.com/caretrack/caretrack-backend/internal/database"
	"github.com/caretrack/caretrack-backend/internal/dto"
	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/caretrack/caretrack-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

type sentMail struct {
	To      string
	Subject string
}

// fakeMailer records sends instead of talking to SES.
type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, toEmail, subject, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: toEmail, Subject: subject})
	return nil
}

func seedUser(t *testing.T, db *gorm.DB, email, fullName, status string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		FullName: fullName,
		JobTitle: "carer",
		Role:     models.RoleStaff,
		Status:   status,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedResident(t *testing.T, db *gorm.DB, name, birthday, room string) *dto.ResidentResponse {
	t.Helper()

	svc := NewResidentService(db, storage.NewBaseURLResolver(""))
	resident, err := svc.Create(&dto.CreateResidentRequest{
		Name:       name,
		Birthday:   birthday,
		RoomNumber: room,
	})
	require.NoError(t, err)
	return resident
}
