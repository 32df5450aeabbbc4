package handlers

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	dateLayout = "2006-01-02"
)

func respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(dto.Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{
		Success: false,
		Message: message,
	})
}

func failValidation(c *fiber.Ctx, errs validation.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrEmailInUse),
		errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrIncorrectPassword),
		errors.Is(err, services.ErrPasswordUnchanged),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidMonth),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrMissingArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCheckinNotFound),
		errors.Is(err, services.ErrTipNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// failWith writes err using errorStatus. Server errors are hidden from the
// client and handed to RequestLog.
func failWith(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		middleware.SetRequestError(c, err)
		return fail(c, status, "Internal server error")
	}
	return fail(c, status, err.Error())
}

// parseBody decodes the JSON body into dst and validates it. On failure the
// error response is already written and handled is true.
func parseBody(c *fiber.Ctx, dst interface{}) (handled bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return true, fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(dst); err != nil {
		var fe validation.FieldErrors
		if errors.As(err, &fe) {
			return true, failValidation(c, fe)
		}
		return true, fail(c, fiber.StatusBadRequest, err.Error())
	}
	return false, nil
}

// pagination reads page and pageSize, clamping them into range.
func pagination(c *fiber.Ctx) (page, size int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	size, err = strconv.Atoi(c.Query("pageSize"))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func pageWindow(page, size int) repository.Page {
	return repository.Page{Offset: (page - 1) * size, Limit: size}
}

func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(size)))
}

func pageLink(c *fiber.Ctx, page, size int) string {
	q := url.Values{}
	for k, v := range c.Queries() {
		if k == "page" || k == "pageSize" {
			continue
		}
		q.Set(k, v)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(size))
	return c.BaseURL() + c.Path() + "?" + q.Encode()
}

// respondPage writes a collection envelope with navigation links.
func respondPage(c *fiber.Ctx, data interface{}, page, size int, total int64) error {
	pages := totalPages(total, size)
	last := pages
	if last < 1 {
		last = 1
	}

	links := dto.Links{
		Self:  pageLink(c, page, size),
		First: pageLink(c, 1, size),
		Last:  pageLink(c, last, size),
	}
	if page > 1 {
		prev := pageLink(c, page-1, size)
		links.Previous = &prev
	}
	if page < pages {
		next := pageLink(c, page+1, size)
		links.Next = &next
	}

	return c.Status(fiber.StatusOK).JSON(dto.PagedResponse{
		Data:            data,
		Page:            page,
		PageSize:        size,
		TotalCount:      total,
		TotalPages:      pages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < pages,
		Links:           links,
	})
}

// parseDate accepts YYYY-MM-DD or RFC3339. An RFC3339 value keeps the calendar
// date written in it, whatever its offset, as midnight UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
