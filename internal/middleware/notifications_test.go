package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMiddlewareTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestPendingApprovalsHeader(t *testing.T) {
	db := newMiddlewareTestDB(t)

	app := fiber.New()
	app.Use(PendingApprovals(db))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "false", resp.Header.Get(NewNotificationsHeader))

	pending := models.User{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Password: "x",
		Status:   models.StatusPending,
	}
	require.NoError(t, db.Create(&pending).Error)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "true", resp.Header.Get(NewNotificationsHeader))

	require.NoError(t, db.Model(&pending).Update("status", models.StatusApproved).Error)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "false", resp.Header.Get(NewNotificationsHeader))
}
