package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/google/uuid"
)

type TipService struct {
	tips TipStore
}

func NewTipService(tips TipStore) *TipService {
	return &TipService{tips: tips}
}

// SeedDefaults inserts the default catalog when no tip exists yet. It is safe
// to call on every start.
func (s *TipService) SeedDefaults(ctx context.Context) error {
	count, err := s.tips.CountTips(ctx)
	if err != nil {
		return fmt.Errorf("failed to count tips: %w", err)
	}
	if count > 0 {
		return nil
	}

	tips := defaultTips()
	if err := s.tips.CreateTips(ctx, tips); err != nil {
		return fmt.Errorf("failed to seed tips: %w", err)
	}
	slog.Info("tip catalog seeded", "count", len(tips))
	return nil
}

// ParseCategory validates an optional category label. Empty means unset.
func ParseCategory(label string) (models.TipCategory, error) {
	if label == "" {
		return "", nil
	}
	c, ok := models.ParseTipCategory(label)
	if !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (s *TipService) List(ctx context.Context, category string, p repository.Page) ([]dto.TipResponse, int64, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return nil, 0, err
	}

	tips, total, err := s.tips.ListTips(ctx, repository.TipFilter{Category: c}, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tips: %w", err)
	}

	out := make([]dto.TipResponse, len(tips))
	for i := range tips {
		out[i] = toTipResponse(&tips[i])
	}
	return out, total, nil
}

func (s *TipService) Categories() []string {
	out := make([]string, len(models.TipCategories))
	for i, c := range models.TipCategories {
		out[i] = string(c)
	}
	return out
}

func (s *TipService) Get(ctx context.Context, id uuid.UUID) (*dto.TipResponse, error) {
	tip, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTipResponse(tip)
	return &resp, nil
}

func (s *TipService) Create(ctx context.Context, req *dto.TipRequest) (*dto.TipResponse, error) {
	c, err := ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	tip := models.Tip{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Category:    c,
	}
	if err := s.tips.CreateTip(ctx, &tip); err != nil {
		return nil, fmt.Errorf("failed to create tip: %w", err)
	}

	resp := toTipResponse(&tip)
	return &resp, nil
}

func (s *TipService) Update(ctx context.Context, id uuid.UUID, req *dto.TipRequest) (*dto.TipResponse, error) {
	c, err := ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	tip, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	tip.Title = req.Title
	tip.Description = req.Description
	tip.Icon = req.Icon
	tip.Color = req.Color
	tip.Category = c
	tip.UpdatedAt = systemClock()

	if err := s.tips.UpdateTip(ctx, tip); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTipNotFound
		}
		return nil, fmt.Errorf("failed to update tip: %w", err)
	}

	resp := toTipResponse(tip)
	return &resp, nil
}

func (s *TipService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tips.DeleteTip(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTipNotFound
		}
		return fmt.Errorf("failed to delete tip: %w", err)
	}
	return nil
}

func (s *TipService) get(ctx context.Context, id uuid.UUID) (*models.Tip, error) {
	tip, err := s.tips.GetTip(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTipNotFound
		}
		return nil, fmt.Errorf("failed to load tip: %w", err)
	}
	return tip, nil
}

func toTipResponse(t *models.Tip) dto.TipResponse {
	return dto.TipResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Icon:        t.Icon,
		Color:       t.Color,
		Category:    string(t.Category),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
