package dto

import (
	"time"

	"athlete-portal/internal/repository"
	"athlete-portal/internal/usecase"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID           uuid.UUID `json:"id"`
	ProgramID    uuid.UUID `json:"program_id"`
	ProgramName  string    `json:"program_name"`
	ProgramSport string    `json:"program_sport"`
	AcademyName  string    `json:"academy_name"`
	Status       string    `json:"status"`
	Withdrawn    bool      `json:"withdrawn"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type ProgramOptionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	AcademyName string    `json:"academy_name"`
}

type ApplicationsPageResponse struct {
	Applications []ApplicationResponse   `json:"applications"`
	Programs     []ProgramOptionResponse `json:"programs"`
}

func NewApplicationResponse(a repository.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		ProgramID:    a.ProgramID,
		ProgramName:  a.ProgramName,
		ProgramSport: a.ProgramSport,
		AcademyName:  a.AcademyName,
		Status:       a.Status,
		Withdrawn:    a.Withdrawn,
		SubmittedAt:  a.SubmittedAt,
	}
}

func NewApplicationsPageResponse(page usecase.ApplicationsPage) ApplicationsPageResponse {
	apps := make([]ApplicationResponse, 0, len(page.Applications))
	for _, a := range page.Applications {
		apps = append(apps, NewApplicationResponse(a))
	}

	programs := make([]ProgramOptionResponse, 0, len(page.Programs))
	for _, p := range page.Programs {
		programs = append(programs, ProgramOptionResponse{
			ID:          p.ID,
			Name:        p.Name,
			Sport:       p.Sport,
			AcademyName: p.AcademyName,
		})
	}

	return ApplicationsPageResponse{Applications: apps, Programs: programs}
}
