package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, s *Store, email string) models.User {
	t.Helper()
	u := models.User{Email: email, PasswordHash: "x", Name: "N"}
	require.NoError(t, s.CreateUser(context.Background(), &u))
	return u
}

func TestUsers(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	u := newUser(t, s, "a@example.com")
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, models.RoleUser, u.Role)

	dup := models.User{Email: "a@example.com"}
	assert.ErrorIs(t, s.CreateUser(ctx, &dup), ErrDuplicateEmail)

	exists, err := s.EmailExists(ctx, "a@example.com", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = s.EmailExists(ctx, "a@example.com", u.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, s.DeleteUser(ctx, uuid.New()), repository.ErrNotFound)
}

func TestCheckins_OrderingAndCascade(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()
	u := newUser(t, s, "a@example.com")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	orphan := models.CheckinEntry{UserID: uuid.New(), Mood: 3, Stress: 3, Sleep: 3}
	assert.Error(t, s.CreateCheckin(ctx, &orphan))

	for i := 0; i < 4; i++ {
		e := models.CheckinEntry{UserID: u.ID, Mood: i + 1, Stress: 3, Sleep: 3, CreatedAt: base.AddDate(0, 0, i)}
		require.NoError(t, s.CreateCheckin(ctx, &e))
	}

	list, total, err := s.ListCheckins(ctx, u.ID, repository.CheckinFilter{}, repository.Page{Offset: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, list, 2)
	assert.Equal(t, 3, list[0].Mood)
	assert.Equal(t, 2, list[1].Mood)

	between, err := s.CheckinsBetween(ctx, u.ID, base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, between, 2)
	assert.Equal(t, 2, between[0].Mood)
	assert.Equal(t, 3, between[1].Mood)

	recent, err := s.RecentCheckins(ctx, u.ID, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 4, recent[0].Mood)

	list[0].Mood = 99
	again, err := s.GetCheckin(ctx, list[0].ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Mood)

	require.NoError(t, s.DeleteUser(ctx, u.ID))
	times, err := s.CheckinTimes(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestTips_Ordering(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateTips(ctx, []models.Tip{
		{Title: "B", Category: models.CategorySleep, CreatedAt: base},
		{Title: "A", Category: models.CategorySleep, CreatedAt: base.Add(time.Minute)},
		{Title: "C", Category: models.CategoryMood, CreatedAt: base},
	}))

	all, total, err := s.ListTips(ctx, repository.TipFilter{}, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"C", "A", "B"}, []string{all[0].Title, all[1].Title, all[2].Title})

	sleep, err := s.TipsByCategory(ctx, models.CategorySleep, 5)
	require.NoError(t, err)
	require.Len(t, sleep, 2)
	assert.Equal(t, "B", sleep[0].Title)
}

func TestSystemLogs_Prune(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()
	now := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveSystemLogs(ctx, []models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now.AddDate(0, 0, -1), Level: "ERROR", Message: "new"},
	}))

	deleted, err := s.DeleteSystemLogsBefore(ctx, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	logs := s.SystemLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "new", logs[0].Message)
}
