package dto

import "athlete-portal/internal/usecase"

type SeedResponse struct {
	Message     string                  `json:"message"`
	Credentials usecase.SeedCredentials `json:"credentials"`
	User        ProfilePageResponse     `json:"user"`
	Academy     *AcademyResponse        `json:"academy"`
}

func NewSeedResponse(res usecase.SeedResult) SeedResponse {
	out := SeedResponse{
		Message:     res.Message,
		Credentials: res.Credentials,
		User:        NewProfilePageResponse(res.User),
	}
	if res.Academy != nil {
		a := NewAcademyResponse(*res.Academy)
		out.Academy = &a
	}
	return out
}
