// Package memstore is an in-memory record store with the same semantics as
// the Postgres store. It backs STORAGE=memory runs and the service tests.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/google/uuid"
)

var ErrDuplicateEmail = errors.New("duplicate key value violates unique constraint \"idx_users_email\"")

type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]models.User
	checkins map[uuid.UUID]models.CheckinEntry
	tips     map[uuid.UUID]models.Tip
	logs     []models.SystemLog
	now      func() time.Time
}

func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]models.User),
		checkins: make(map[uuid.UUID]models.CheckinEntry),
		tips:     make(map[uuid.UUID]models.Tip),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func copyCheckin(e models.CheckinEntry) models.CheckinEntry {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	if e.Notes != nil {
		n := *e.Notes
		e.Notes = &n
	}
	if e.UpdatedAt != nil {
		u := *e.UpdatedAt
		e.UpdatedAt = &u
	}
	return e
}

// --- users ---

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := s.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) EmailExists(_ context.Context, email string, exclude uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email && u.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, u := range s.users {
		if u.Email == user.Email && u.ID != user.ID {
			return ErrDuplicateEmail
		}
	}
	user.UpdatedAt = s.now()
	s.users[user.ID] = *user
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	for cid, c := range s.checkins {
		if c.UserID == id {
			delete(s.checkins, cid)
		}
	}
	delete(s.users, id)
	return nil
}

// --- check-ins ---

func (s *Store) CreateCheckin(_ context.Context, entry *models.CheckinEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[entry.UserID]; !ok {
		return errors.New("insert or update on table \"checkin_entries\" violates foreign key constraint")
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.checkins[entry.ID] = copyCheckin(*entry)
	return nil
}

func (s *Store) GetCheckin(_ context.Context, id, userID uuid.UUID) (*models.CheckinEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.checkins[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	e = copyCheckin(e)
	return &e, nil
}

func (s *Store) UpdateCheckin(_ context.Context, entry *models.CheckinEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.checkins[entry.ID]
	if !ok || e.UserID != entry.UserID {
		return repository.ErrNotFound
	}
	e.Mood, e.Stress, e.Sleep = entry.Mood, entry.Stress, entry.Sleep
	e.Notes, e.Tags, e.UpdatedAt = entry.Notes, entry.Tags, entry.UpdatedAt
	s.checkins[e.ID] = copyCheckin(e)
	return nil
}

func (s *Store) DeleteCheckin(_ context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.checkins[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.checkins, id)
	return nil
}

// userCheckins returns the user's check-ins matching f, oldest first.
// Callers must hold the read lock.
func (s *Store) userCheckins(userID uuid.UUID, f repository.CheckinFilter) []models.CheckinEntry {
	var out []models.CheckinEntry
	for _, e := range s.checkins {
		if e.UserID != userID {
			continue
		}
		if !f.From.IsZero() && e.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !e.CreatedAt.Before(f.To) {
			continue
		}
		out = append(out, copyCheckin(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func window[T any](items []T, p repository.Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}

func (s *Store) ListCheckins(_ context.Context, userID uuid.UUID, f repository.CheckinFilter, p repository.Page) ([]models.CheckinEntry, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.userCheckins(userID, f)
	reverse(all)
	return window(all, p), int64(len(all)), nil
}

func (s *Store) CheckinsBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]models.CheckinEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userCheckins(userID, repository.CheckinFilter{From: from, To: to}), nil
}

func (s *Store) RecentCheckins(_ context.Context, userID uuid.UUID, limit int) ([]models.CheckinEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.userCheckins(userID, repository.CheckinFilter{})
	reverse(all)
	return window(all, repository.Page{Limit: limit}), nil
}

func (s *Store) CheckinTimes(_ context.Context, userID uuid.UUID) ([]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.userCheckins(userID, repository.CheckinFilter{})
	times := make([]time.Time, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		times = append(times, all[i].CreatedAt)
	}
	return times, nil
}

// --- tips ---

func (s *Store) CountTips(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tips)), nil
}

func (s *Store) CreateTips(ctx context.Context, tips []models.Tip) error {
	for i := range tips {
		if err := s.CreateTip(ctx, &tips[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CreateTip(_ context.Context, tip *models.Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tip.ID == uuid.Nil {
		tip.ID = uuid.New()
	}
	now := s.now()
	if tip.CreatedAt.IsZero() {
		tip.CreatedAt = now
	}
	tip.UpdatedAt = now
	s.tips[tip.ID] = *tip
	return nil
}

func (s *Store) GetTip(_ context.Context, id uuid.UUID) (*models.Tip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (s *Store) UpdateTip(_ context.Context, tip *models.Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tips[tip.ID]
	if !ok {
		return repository.ErrNotFound
	}
	tip.CreatedAt = existing.CreatedAt
	s.tips[tip.ID] = *tip
	return nil
}

func (s *Store) DeleteTip(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.tips, id)
	return nil
}

func (s *Store) filteredTips(f repository.TipFilter) []models.Tip {
	out := make([]models.Tip, 0, len(s.tips))
	for _, t := range s.tips {
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Store) ListTips(_ context.Context, f repository.TipFilter, p repository.Page) ([]models.Tip, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tips := s.filteredTips(f)
	sort.Slice(tips, func(i, j int) bool {
		if tips[i].Category != tips[j].Category {
			return tips[i].Category < tips[j].Category
		}
		if tips[i].Title != tips[j].Title {
			return tips[i].Title < tips[j].Title
		}
		return tips[i].ID.String() < tips[j].ID.String()
	})
	return window(tips, p), int64(len(tips)), nil
}

func (s *Store) TipsByCategory(_ context.Context, category models.TipCategory, limit int) ([]models.Tip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tips := s.filteredTips(repository.TipFilter{Category: category})
	sort.Slice(tips, func(i, j int) bool {
		if !tips[i].CreatedAt.Equal(tips[j].CreatedAt) {
			return tips[i].CreatedAt.Before(tips[j].CreatedAt)
		}
		return tips[i].Title < tips[j].Title
	})
	return window(tips, repository.Page{Limit: limit}), nil
}

// --- system logs ---

func (s *Store) SaveSystemLogs(_ context.Context, logs []models.SystemLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range logs {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		if l.CreatedAt.IsZero() {
			l.CreatedAt = s.now()
		}
		s.logs = append(s.logs, l)
	}
	return nil
}

func (s *Store) DeleteSystemLogsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.logs[:0]
	for _, l := range s.logs {
		if !l.Timestamp.Before(cutoff) {
			kept = append(kept, l)
		}
	}
	deleted := int64(len(s.logs) - len(kept))
	s.logs = kept
	return deleted, nil
}

// SystemLogs returns a copy of the stored log records, oldest first.
func (s *Store) SystemLogs() []models.SystemLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SystemLog(nil), s.logs...)
}
