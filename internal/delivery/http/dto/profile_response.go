package dto

import (
	"time"

	"athlete-portal/internal/repository"
	"athlete-portal/internal/usecase"

	"github.com/google/uuid"
)

type AthleteProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Sport          *string   `json:"sport"`
	Positions      []string  `json:"positions"`
	Bio            *string   `json:"bio"`
	HeightCm       *float64  `json:"height_cm"`
	WeightKg       *float64  `json:"weight_kg"`
	GraduationYear *int      `json:"graduation_year"`
	Location       *string   `json:"location"`
	PrimaryEmail   *string   `json:"primary_email"`
	Phone          *string   `json:"phone"`
	WebsiteURL     *string   `json:"website_url"`
	InstagramURL   *string   `json:"instagram_url"`
	YouTubeURL     *string   `json:"youtube_url"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProfilePageResponse struct {
	UserID  uuid.UUID               `json:"user_id"`
	Email   string                  `json:"email"`
	Name    string                  `json:"name"`
	Role    string                  `json:"role"`
	Profile *AthleteProfileResponse `json:"profile"`
}

func NewProfilePageResponse(page usecase.ProfilePage) ProfilePageResponse {
	return ProfilePageResponse{
		UserID:  page.UserID,
		Email:   page.Email,
		Name:    page.Name,
		Role:    string(page.Role),
		Profile: newAthleteProfileResponse(page.Profile),
	}
}

func newAthleteProfileResponse(p *repository.AthleteProfile) *AthleteProfileResponse {
	if p == nil {
		return nil
	}
	return &AthleteProfileResponse{
		ID:             p.ID,
		Sport:          p.Sport,
		Positions:      p.Positions,
		Bio:            p.Bio,
		HeightCm:       p.HeightCm,
		WeightKg:       p.WeightKg,
		GraduationYear: p.GraduationYear,
		Location:       p.Location,
		PrimaryEmail:   p.PrimaryEmail,
		Phone:          p.Phone,
		WebsiteURL:     p.WebsiteURL,
		InstagramURL:   p.InstagramURL,
		YouTubeURL:     p.YouTubeURL,
		UpdatedAt:      p.UpdatedAt,
	}
}
