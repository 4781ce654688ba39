package dto

import (
	"time"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

type RecordingResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Description  *string   `json:"description"`
	Verification string    `json:"verification"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewRecordingResponse(r repository.Recording) RecordingResponse {
	return RecordingResponse{
		ID:           r.ID,
		Title:        r.Title,
		URL:          r.URL,
		Description:  r.Description,
		Verification: r.Verification,
		CreatedAt:    r.CreatedAt,
	}
}

func NewRecordingListResponse(items []repository.Recording) []RecordingResponse {
	out := make([]RecordingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewRecordingResponse(it))
	}
	return out
}
