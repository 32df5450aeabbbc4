package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository/memstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fixedNow is a Wednesday; its week starts on 2026-03-16.
var fixedNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret-at-least-32-chars-long-for-security",
		JWTIssuer:  "wellness-test",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func createUser(t *testing.T, store *memstore.Store) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Name:         "Test User",
	}
	require.NoError(t, store.CreateUser(context.Background(), &user))
	return user.ID
}

func addCheckin(t *testing.T, store *memstore.Store, userID uuid.UUID, at time.Time, mood, stress, sleep int) {
	t.Helper()
	entry := models.CheckinEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Mood:      mood,
		Stress:    stress,
		Sleep:     sleep,
		CreatedAt: at,
	}
	require.NoError(t, store.CreateCheckin(context.Background(), &entry))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}
