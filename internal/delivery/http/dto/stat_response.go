package dto

import (
	"time"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

type StatResponse struct {
	ID           uuid.UUID `json:"id"`
	Category     string    `json:"category"`
	Name         string    `json:"name"`
	Unit         *string   `json:"unit"`
	ValueNumber  *float64  `json:"value_number"`
	ValueString  *string   `json:"value_string"`
	Verification string    `json:"verification"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewStatResponse(s repository.Stat) StatResponse {
	return StatResponse{
		ID:           s.ID,
		Category:     s.Category,
		Name:         s.Name,
		Unit:         s.Unit,
		ValueNumber:  s.ValueNumber,
		ValueString:  s.ValueString,
		Verification: s.Verification,
		CreatedAt:    s.CreatedAt,
	}
}

func NewStatListResponse(items []repository.Stat) []StatResponse {
	out := make([]StatResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewStatResponse(it))
	}
	return out
}
