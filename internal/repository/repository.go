// Package repository persists users, check-ins and tips with GORM.
package repository

import (
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
)

var ErrNotFound = errors.New("record not found")

// CheckinFilter narrows a check-in listing. From is inclusive, To exclusive;
// zero values leave that side open.
type CheckinFilter struct {
	From time.Time
	To   time.Time
}

// TipFilter narrows a tip listing. An empty Category matches every tip.
type TipFilter struct {
	Category models.TipCategory
}

// Page is an offset/limit window over an ordered result.
type Page struct {
	Offset int
	Limit  int
}
