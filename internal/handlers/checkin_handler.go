package handlers

import (
	"strconv"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CheckinHandler struct {
	checkins *services.CheckinService
}

func NewCheckinHandler(checkins *services.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkins: checkins}
}

func entryID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func (h *CheckinHandler) Create(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.CheckinRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	entry, err := h.checkins.Create(c.UserContext(), userID, &req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, entry, "Check-in created")
}

func (h *CheckinHandler) List(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var f repository.CheckinFilter
	if from := c.Query("from"); from != "" {
		d, err := parseDate(from)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "from must be a date (YYYY-MM-DD)")
		}
		f.From = d
	}
	if to := c.Query("to"); to != "" {
		d, err := parseDate(to)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "to must be a date (YYYY-MM-DD)")
		}
		f.To = d.AddDate(0, 0, 1)
	}

	page, size := pagination(c)
	entries, total, err := h.checkins.List(c.UserContext(), userID, f, pageWindow(page, size))
	if err != nil {
		return failWith(c, err)
	}
	return respondPage(c, entries, page, size, total)
}

func (h *CheckinHandler) Get(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := entryID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid check-in ID")
	}

	entry, err := h.checkins.Get(c.UserContext(), userID, id)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, entry, "")
}

func (h *CheckinHandler) Update(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := entryID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid check-in ID")
	}

	var req dto.CheckinRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}

	entry, err := h.checkins.Update(c.UserContext(), userID, id, &req)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, entry, "Check-in updated")
}

func (h *CheckinHandler) Delete(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := entryID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid check-in ID")
	}

	if err := h.checkins.Delete(c.UserContext(), userID, id); err != nil {
		return failWith(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// WeeklyReport rejects an explicit userId that is not the caller.
func (h *CheckinHandler) WeeklyReport(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	if raw := c.Query("userId"); raw != "" {
		requested, err := uuid.Parse(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid userId")
		}
		if requested != userID {
			return fail(c, fiber.StatusForbidden, "You can only view your own reports")
		}
	}

	var weekStart time.Time
	if raw := c.Query("weekStart"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "weekStart must be a date (YYYY-MM-DD)")
		}
		weekStart = d
	}

	report, err := h.checkins.WeeklyReport(c.UserContext(), userID, weekStart)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, report, "")
}

func (h *CheckinHandler) MonthlyReport(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	year, err := optionalInt(c.Query("year"))
	if err != nil || year < 0 {
		return fail(c, fiber.StatusBadRequest, "year must be a number")
	}
	month, err := optionalInt(c.Query("month"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "month must be a number")
	}

	report, err := h.checkins.MonthlyReport(c.UserContext(), userID, year, month)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, report, "")
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
