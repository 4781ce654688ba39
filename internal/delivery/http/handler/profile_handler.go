package handler

import (
	"errors"

	"athlete-portal/internal/delivery/http/dto"
	"athlete-portal/internal/delivery/http/middleware"
	"athlete-portal/internal/pkg/response"
	"athlete-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	Name           string `json:"name" form:"name"`
	Sport          string `json:"sport" form:"sport"`
	Positions      string `json:"positions" form:"positions"`
	Bio            string `json:"bio" form:"bio"`
	HeightCm       string `json:"heightCm" form:"heightCm"`
	WeightKg       string `json:"weightKg" form:"weightKg"`
	GraduationYear string `json:"graduationYear" form:"graduationYear"`
	Location       string `json:"location" form:"location"`
	PrimaryEmail   string `json:"primaryEmail" form:"primaryEmail"`
	Phone          string `json:"phone" form:"phone"`
	WebsiteURL     string `json:"websiteUrl" form:"websiteUrl"`
	InstagramURL   string `json:"instagramUrl" form:"instagramUrl"`
	YouTubeURL     string `json:"youtubeUrl" form:"youtubeUrl"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/profile")
	grp.Get("/", h.Get)
	grp.Put("/", h.Update)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	page, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfilePageResponse(page))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	page, err := h.uc.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		Name:           req.Name,
		Sport:          req.Sport,
		Positions:      req.Positions,
		Bio:            req.Bio,
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		GraduationYear: req.GraduationYear,
		Location:       req.Location,
		PrimaryEmail:   req.PrimaryEmail,
		Phone:          req.Phone,
		WebsiteURL:     req.WebsiteURL,
		InstagramURL:   req.InstagramURL,
		YouTubeURL:     req.YouTubeURL,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfilePageResponse(page))
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
