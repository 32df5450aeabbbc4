package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	accounts *services.AccountService
}

func NewAuthHandler(accounts *services.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	resp, err := h.accounts.Register(c.UserContext(), &req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, resp, "Registration successful")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	resp, err := h.accounts.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, resp, "")
}

type UserHandler struct {
	accounts *services.AccountService
}

func NewUserHandler(accounts *services.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

func callerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := middleware.CurrentUserID(c)
	return id, err == nil
}

// unauthorized is left to ErrorHandler, which maps it to 401.
func unauthorized(_ *fiber.Ctx) error {
	return services.ErrUnauthorized
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.accounts.GetProfile(c.UserContext(), userID)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, user, "")
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	user, err := h.accounts.UpdateProfile(c.UserContext(), userID, &req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, user, "Profile updated")
}

func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.UpdatePasswordRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	if err := h.accounts.UpdatePassword(c.UserContext(), userID, &req); err != nil {
		return failWith(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.DeleteAccountRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	if err := h.accounts.DeleteAccount(c.UserContext(), userID, req.Password); err != nil {
		if errors.Is(err, services.ErrIncorrectPassword) {
			return fail(c, fiber.StatusUnauthorized, "Incorrect password. Please try again.")
		}
		return failWith(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
