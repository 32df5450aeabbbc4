package middleware

import (
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected accepts HS256 bearer tokens signed with JWT_SECRET. When
// JWT_ISSUER is set the iss claim must match it.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: rejectToken,
		SuccessHandler: func(c *fiber.Ctx) error {
			if cfg.JWTIssuer == "" {
				return c.Next()
			}
			mc, ok := claims(c)
			if !ok {
				return rejectToken(c, errNoIdentity)
			}
			if iss, err := mc.GetIssuer(); err != nil || iss != cfg.JWTIssuer {
				return rejectToken(c, err)
			}
			return c.Next()
		},
	})
}

func rejectToken(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
		Success: false,
		Message: "Unauthorized: invalid or expired token",
	})
}
