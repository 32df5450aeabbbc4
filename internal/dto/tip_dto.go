package dto

import (
	"time"

	"github.com/google/uuid"
)

type TipRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Icon        string `json:"icon" validate:"omitempty,max=50"`
	Color       string `json:"color" validate:"omitempty,max=20"`
	Category    string `json:"category" validate:"omitempty,oneof=Stress Sleep Mood Wellness"`
}

type TipResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
