package services

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/google/uuid"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type CheckinStore interface {
	CreateCheckin(ctx context.Context, entry *models.CheckinEntry) error
	GetCheckin(ctx context.Context, id, userID uuid.UUID) (*models.CheckinEntry, error)
	UpdateCheckin(ctx context.Context, entry *models.CheckinEntry) error
	DeleteCheckin(ctx context.Context, id, userID uuid.UUID) error
	ListCheckins(ctx context.Context, userID uuid.UUID, f repository.CheckinFilter, p repository.Page) ([]models.CheckinEntry, int64, error)
	CheckinsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CheckinEntry, error)
	RecentCheckins(ctx context.Context, userID uuid.UUID, limit int) ([]models.CheckinEntry, error)
	CheckinTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}

type TipStore interface {
	CountTips(ctx context.Context) (int64, error)
	CreateTips(ctx context.Context, tips []models.Tip) error
	CreateTip(ctx context.Context, tip *models.Tip) error
	GetTip(ctx context.Context, id uuid.UUID) (*models.Tip, error)
	UpdateTip(ctx context.Context, tip *models.Tip) error
	DeleteTip(ctx context.Context, id uuid.UUID) error
	ListTips(ctx context.Context, f repository.TipFilter, p repository.Page) ([]models.Tip, int64, error)
	TipsByCategory(ctx context.Context, category models.TipCategory, limit int) ([]models.Tip, error)
}

// Clock returns the current time. Services default to UTC wall time.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }
