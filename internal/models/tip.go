package models

import (
	"time"

	"github.com/google/uuid"
)

// TipCategory labels a tip for filtering and recommendation matching.
type TipCategory string

const (
	CategoryStress   TipCategory = "Stress"
	CategorySleep    TipCategory = "Sleep"
	CategoryMood     TipCategory = "Mood"
	CategoryWellness TipCategory = "Wellness"
)

// TipCategories is the fixed vocabulary, in recommendation order.
var TipCategories = []TipCategory{CategorySleep, CategoryMood, CategoryStress, CategoryWellness}

func ParseTipCategory(s string) (TipCategory, bool) {
	for _, c := range TipCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Tip is a static advice record of the catalog. An empty Category means unset.
type Tip struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string      `gorm:"not null;size:100" json:"title"`
	Description string      `gorm:"not null;size:500" json:"description"`
	Icon        string      `gorm:"size:50" json:"icon,omitempty"`
	Color       string      `gorm:"size:20" json:"color,omitempty"`
	Category    TipCategory `gorm:"size:20;index" json:"category,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
