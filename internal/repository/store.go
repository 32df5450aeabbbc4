package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the Postgres-backed record store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- users ---

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// EmailExists reports whether another user than exclude already holds email.
func (s *Store) EmailExists(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// DeleteUser removes the user together with every check-in they own.
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.CheckinEntry{}).Error; err != nil {
			return fmt.Errorf("delete checkins: %w", err)
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// --- check-ins ---

func (s *Store) CreateCheckin(ctx context.Context, entry *models.CheckinEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *Store) GetCheckin(ctx context.Context, id, userID uuid.UUID) (*models.CheckinEntry, error) {
	var entry models.CheckinEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &entry, nil
}

func (s *Store) UpdateCheckin(ctx context.Context, entry *models.CheckinEntry) error {
	res := s.db.WithContext(ctx).
		Model(&models.CheckinEntry{}).
		Where("id = ? AND user_id = ?", entry.ID, entry.UserID).
		Updates(map[string]interface{}{
			"mood":       entry.Mood,
			"stress":     entry.Stress,
			"sleep":      entry.Sleep,
			"notes":      entry.Notes,
			"tags":       entry.Tags,
			"updated_at": entry.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteCheckin(ctx context.Context, id, userID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CheckinEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func checkinRange(q *gorm.DB, f CheckinFilter) *gorm.DB {
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}
	return q
}

// ListCheckins returns one page of the user's check-ins, newest first.
func (s *Store) ListCheckins(ctx context.Context, userID uuid.UUID, f CheckinFilter, p Page) ([]models.CheckinEntry, int64, error) {
	var total int64
	base := checkinRange(s.db.WithContext(ctx).Model(&models.CheckinEntry{}).Where("user_id = ?", userID), f)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.CheckinEntry
	err := checkinRange(s.db.WithContext(ctx).Where("user_id = ?", userID), f).
		Order("created_at DESC").
		Order("id DESC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&entries).Error
	return entries, total, err
}

// CheckinsBetween returns check-ins created in [from, to), oldest first.
func (s *Store) CheckinsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.CheckinEntry, error) {
	var entries []models.CheckinEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// RecentCheckins returns up to limit check-ins, newest first.
func (s *Store) RecentCheckins(ctx context.Context, userID uuid.UUID, limit int) ([]models.CheckinEntry, error) {
	var entries []models.CheckinEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *Store) CheckinTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var times []time.Time
	err := s.db.WithContext(ctx).
		Model(&models.CheckinEntry{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("created_at", &times).Error
	return times, err
}

// --- tips ---

func tipScope(q *gorm.DB, f TipFilter) *gorm.DB {
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	return q
}

func (s *Store) CountTips(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Tip{}).Count(&count).Error
	return count, err
}

func (s *Store) CreateTips(ctx context.Context, tips []models.Tip) error {
	return s.db.WithContext(ctx).CreateInBatches(tips, 50).Error
}

func (s *Store) CreateTip(ctx context.Context, tip *models.Tip) error {
	return s.db.WithContext(ctx).Create(tip).Error
}

func (s *Store) GetTip(ctx context.Context, id uuid.UUID) (*models.Tip, error) {
	var tip models.Tip
	if err := s.db.WithContext(ctx).First(&tip, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &tip, nil
}

func (s *Store) UpdateTip(ctx context.Context, tip *models.Tip) error {
	res := s.db.WithContext(ctx).
		Model(&models.Tip{}).
		Where("id = ?", tip.ID).
		Updates(map[string]interface{}{
			"title":       tip.Title,
			"description": tip.Description,
			"icon":        tip.Icon,
			"color":       tip.Color,
			"category":    tip.Category,
			"updated_at":  tip.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTip(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Tip{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListTips(ctx context.Context, f TipFilter, p Page) ([]models.Tip, int64, error) {
	var total int64
	if err := tipScope(s.db.WithContext(ctx).Model(&models.Tip{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tips []models.Tip
	err := tipScope(s.db.WithContext(ctx), f).
		Order("category ASC").
		Order("title ASC").
		Order("id ASC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&tips).Error
	return tips, total, err
}

// TipsByCategory returns up to limit tips of one category in catalog order.
func (s *Store) TipsByCategory(ctx context.Context, category models.TipCategory, limit int) ([]models.Tip, error) {
	var tips []models.Tip
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at ASC").
		Order("title ASC").
		Limit(limit).
		Find(&tips).Error
	return tips, err
}

// --- system logs ---

func (s *Store) SaveSystemLogs(ctx context.Context, logs []models.SystemLog) error {
	if len(logs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(logs, 50).Error
}

func (s *Store) DeleteSystemLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}
