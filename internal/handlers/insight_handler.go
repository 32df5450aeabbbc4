package handlers

import (
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InsightHandler struct {
	insights *services.InsightService
}

func NewInsightHandler(insights *services.InsightService) *InsightHandler {
	return &InsightHandler{insights: insights}
}

func (h *InsightHandler) Trends(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	trends, err := h.insights.Trends(c.UserContext(), userID, c.Query("period", services.PeriodWeek))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, trends, "")
}

func (h *InsightHandler) Streak(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	streak, err := h.insights.Streak(c.UserContext(), userID)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, streak, "")
}

// Compare needs all four of period1Start, period1End, period2Start and
// period2End.
func (h *InsightHandler) Compare(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	keys := [4]string{"period1Start", "period1End", "period2Start", "period2End"}
	var dates [4]time.Time
	for i, key := range keys {
		raw := c.Query(key)
		if raw == "" {
			return fmt.Errorf("%w: period1Start, period1End, period2Start and period2End are required", services.ErrMissingArgument)
		}
		d, err := parseDate(raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, key+" must be a date (YYYY-MM-DD)")
		}
		dates[i] = d
	}

	cmp, err := h.insights.Compare(c.UserContext(), userID, dates[0], dates[1], dates[2], dates[3])
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, cmp, "")
}

func (h *InsightHandler) RecommendedTips(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	tips, err := h.insights.RecommendedTips(c.UserContext(), userID)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, tips, "")
}
