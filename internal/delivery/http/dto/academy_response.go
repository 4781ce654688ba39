package dto

import (
	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

type ProgramResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	Description *string   `json:"description"`
}

type AcademyResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Website     *string           `json:"website"`
	Location    *string           `json:"location"`
	Programs    []ProgramResponse `json:"programs"`
}

func NewAcademyResponse(a repository.Academy) AcademyResponse {
	programs := make([]ProgramResponse, 0, len(a.Programs))
	for _, p := range a.Programs {
		programs = append(programs, ProgramResponse{
			ID:          p.ID,
			Name:        p.Name,
			Sport:       p.Sport,
			Description: p.Description,
		})
	}
	return AcademyResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Website:     a.Website,
		Location:    a.Location,
		Programs:    programs,
	}
}

func NewAcademyListResponse(items []repository.Academy) []AcademyResponse {
	out := make([]AcademyResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewAcademyResponse(it))
	}
	return out
}
