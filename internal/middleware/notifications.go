package middleware

import (
	"strconv"

	"github.com/caretrack/caretrack-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewNotificationsHeader is set to "true" on authenticated responses while
// at least one staff registration is awaiting admin approval.
const NewNotificationsHeader = "X-New-Notifications"

// PendingApprovals surfaces the "are there pending staff approvals" flag.
// It is a derived read recomputed per request; nothing is cached between
// requests.
func PendingApprovals(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var pending int64
		if err := db.Model(&models.User{}).
			Where("status = ?", models.StatusPending).
			Count(&pending).Error; err == nil {
			c.Set(NewNotificationsHeader, strconv.FormatBool(pending > 0))
		}
		return c.Next()
	}
}
