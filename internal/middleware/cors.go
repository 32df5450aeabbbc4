package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS lets browser clients call the API and read the request id header.
// Credentials are only allowed for an explicit origin list; fiber rejects
// them together with a "*" wildcard.
func CORS(cfg *config.Config) fiber.Handler {
	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    fiber.HeaderXRequestID,
		AllowCredentials: !strings.Contains(origins, "*"),
		MaxAge:           600,
	})
}
