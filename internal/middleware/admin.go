package middleware

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RoleChecker looks up whether a user holds the admin role.
type RoleChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminRequired passes callers whose email is listed in ADMIN_EMAILS or whose
// stored role is admin. It must run after JWTProtected.
func AdminRequired(cfg *config.Config, roles RoleChecker) fiber.Handler {
	adminEmails := cfg.AdminEmailList()

	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false, Message: "Unauthorized",
			})
		}

		if contains(adminEmails, strings.ToLower(CurrentEmail(c))) {
			return c.Next()
		}

		if ok, err := roles.IsAdmin(c.UserContext(), userID); err == nil && ok {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.Response{
			Success: false, Message: "Admin access required",
		})
	}
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
