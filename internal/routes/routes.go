package routes

import (
	"time"

	"github.com/caretrack/caretrack-backend/internal/config"
	"github.com/caretrack/caretrack-backend/internal/handlers"
	"github.com/caretrack/caretrack-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	staffHandler *handlers.StaffHandler,
	residentHandler *handlers.ResidentHandler,
	carePlanHandler *handlers.CarePlanHandler,
	feedHandler *handlers.FeedHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/update-password", authHandler.UpdatePassword)

	jwt := middleware.JWTProtected(cfg)
	approved := middleware.ApprovedStaff(db)
	admin := middleware.AdminRequired(db, cfg)
	notify := middleware.PendingApprovals(db)

	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Put("/profile", jwt, notify, authHandler.UpdateProfile)

	// Residents and their care plans / feeds
	residents := api.Group("/residents", jwt, notify)
	residents.Get("/", residentHandler.List)
	residents.Post("/", admin, residentHandler.Create)
	residents.Delete("/:id", admin, residentHandler.Delete)
	residents.Put("/:id/icon", approved, residentHandler.UpdateIcon)

	residents.Get("/:id/care-plan", carePlanHandler.Get)
	residents.Put("/:id/care-plan", approved, carePlanHandler.Update)

	residents.Get("/:id/feed", feedHandler.List)
	residents.Post("/:id/feed", approved, feedHandler.Create)

	// Feed post mutations, author-only (enforced in the service)
	api.Put("/feed/:id", jwt, approved, feedHandler.Update)
	api.Delete("/feed/:id", jwt, approved, feedHandler.Delete)

	// Staff administration
	staff := api.Group("/staff", jwt, notify)
	staff.Get("/", staffHandler.List)
	staff.Put("/:id/approve", admin, staffHandler.Approve)
	staff.Post("/:id/decline", admin, staffHandler.Decline)
	staff.Delete("/:id", admin, staffHandler.Delete)
}
