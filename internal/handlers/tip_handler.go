package handlers

import (
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TipHandler struct {
	tips *services.TipService
}

func NewTipHandler(tips *services.TipService) *TipHandler {
	return &TipHandler{tips: tips}
}

func tipID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func (h *TipHandler) List(c *fiber.Ctx) error {
	page, size := pagination(c)
	tips, total, err := h.tips.List(c.UserContext(), c.Query("category"), pageWindow(page, size))
	if err != nil {
		return failWith(c, err)
	}
	return respondPage(c, tips, page, size, total)
}

func (h *TipHandler) Categories(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.tips.Categories(), "")
}

func (h *TipHandler) Get(c *fiber.Ctx) error {
	id, ok := tipID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid tip ID")
	}

	tip, err := h.tips.Get(c.UserContext(), id)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, tip, "")
}

func (h *TipHandler) Create(c *fiber.Ctx) error {
	var req dto.TipRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	tip, err := h.tips.Create(c.UserContext(), &req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, tip, "Tip created")
}

func (h *TipHandler) Update(c *fiber.Ctx) error {
	id, ok := tipID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid tip ID")
	}

	var req dto.TipRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	tip, err := h.tips.Update(c.UserContext(), id, &req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, tip, "Tip updated")
}

func (h *TipHandler) Delete(c *fiber.Ctx) error {
	id, ok := tipID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid tip ID")
	}

	if err := h.tips.Delete(c.UserContext(), id); err != nil {
		return failWith(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
