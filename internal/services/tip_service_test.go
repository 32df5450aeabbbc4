package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository/memstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaults_Idempotent(t *testing.T) {
	t.Parallel()
	store := memstore.New()
	svc := NewTipService(store)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	require.NoError(t, svc.SeedDefaults(ctx))

	count, err := store.CountTips(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(defaultCatalog)), count)

	want := map[string]int64{"Stress": 4, "Sleep": 4, "Mood": 4, "Wellness": 5}
	for _, category := range svc.Categories() {
		tips, total, err := svc.List(ctx, category, repository.Page{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, want[category], total, category)
		for _, tip := range tips {
			assert.Equal(t, category, tip.Category)
		}
	}
}

func TestSeedDefaults_SkipsNonEmptyCatalog(t *testing.T) {
	t.Parallel()
	store := memstore.New()
	svc := NewTipService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.TipRequest{Title: "Custom", Description: "Mine"})
	require.NoError(t, err)
	require.NoError(t, svc.SeedDefaults(ctx))

	count, err := store.CountTips(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTipList_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	svc := NewTipService(memstore.New())

	_, _, err := svc.List(context.Background(), "Diet", repository.Page{Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestTipCategories(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Sleep", "Mood", "Stress", "Wellness"}, NewTipService(memstore.New()).Categories())
}

func TestTipCRUD(t *testing.T) {
	t.Parallel()
	svc := NewTipService(memstore.New())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.TipRequest{
		Title: "Stretch", Description: "Stretch for five minutes", Icon: "move", Color: "#fff", Category: "Wellness",
	})
	require.NoError(t, err)
	assert.Equal(t, "Wellness", created.Category)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", got.Title)

	updated, err := svc.Update(ctx, created.ID, &dto.TipRequest{Title: "Stretch more", Description: "Ten minutes", Category: "Stress"})
	require.NoError(t, err)
	assert.Equal(t, "Stretch more", updated.Title)
	assert.Equal(t, "Stress", updated.Category)

	_, err = svc.Update(ctx, created.ID, &dto.TipRequest{Title: "x", Description: "y", Category: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTipNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), ErrTipNotFound)
}
