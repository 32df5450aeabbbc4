package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MinRating = 1
	MaxRating = 5
)

// CheckinEntry is one mood/stress/sleep rating triple logged by a user.
// UpdatedAt stays nil until the entry is edited for the first time.
type CheckinEntry struct {
	ID        uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID                   `gorm:"type:uuid;not null;index:idx_checkins_user_created,priority:1" json:"userId"`
	User      *User                       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Mood      int                         `gorm:"not null;check:chk_checkins_mood,mood BETWEEN 1 AND 5" json:"mood"`
	Stress    int                         `gorm:"not null;check:chk_checkins_stress,stress BETWEEN 1 AND 5" json:"stress"`
	Sleep     int                         `gorm:"not null;check:chk_checkins_sleep,sleep BETWEEN 1 AND 5" json:"sleep"`
	Notes     *string                     `gorm:"size:500" json:"notes"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	CreatedAt time.Time                   `gorm:"not null;index:idx_checkins_user_created,priority:2" json:"createdAt"`
	UpdatedAt *time.Time                  `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (CheckinEntry) TableName() string { return "checkin_entries" }

// ValidRating reports whether v is inside the closed rating range.
func ValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}
