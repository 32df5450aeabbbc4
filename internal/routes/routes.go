package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	roles middleware.RoleChecker,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	checkinHandler *handlers.CheckinHandler,
	insightHandler *handlers.InsightHandler,
	tipHandler *handlers.TipHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth: public, rate limited per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               cfg.AuthRateLimit,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	protected := middleware.JWTProtected(cfg)

	users := api.Group("/users", protected)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateProfile)
	users.Put("/me/password", userHandler.UpdatePassword)
	users.Delete("/me", userHandler.DeleteAccount)

	// Report routes go before /:id so they are not parsed as an id.
	checkins := api.Group("/checkins", protected)
	checkins.Post("/", checkinHandler.Create)
	checkins.Get("/", checkinHandler.List)
	checkins.Get("/reports/weekly", checkinHandler.WeeklyReport)
	checkins.Get("/reports/monthly", checkinHandler.MonthlyReport)
	checkins.Get("/:id", checkinHandler.Get)
	checkins.Put("/:id", checkinHandler.Update)
	checkins.Delete("/:id", checkinHandler.Delete)

	insights := api.Group("/insights", protected)
	insights.Get("/trends", insightHandler.Trends)
	insights.Get("/streak", insightHandler.Streak)
	insights.Get("/compare", insightHandler.Compare)
	insights.Get("/recommended-tips", insightHandler.RecommendedTips)

	tips := api.Group("/tips", protected)
	tips.Get("/", tipHandler.List)
	tips.Get("/categories", tipHandler.Categories)
	tips.Get("/:id", tipHandler.Get)

	writes := []fiber.Handler{}
	if cfg.TipWritesAdminOnly {
		writes = append(writes, middleware.AdminRequired(cfg, roles))
	}
	tips.Post("/", append(writes, tipHandler.Create)...)
	tips.Put("/:id", append(writes, tipHandler.Update)...)
	tips.Delete("/:id", append(writes, tipHandler.Delete)...)
}
