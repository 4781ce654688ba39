package handler

import (
	"athlete-portal/internal/delivery/http/dto"
	"athlete-portal/internal/delivery/http/middleware"
	"athlete-portal/internal/pkg/response"
	"athlete-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SeedHandler struct {
	uc usecase.SeedUsecase
}

func NewSeedHandler(uc usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

func (h *SeedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	// GET is an alias so the seed can be triggered from a browser.
	r.Post("/seed", h.Seed)
	r.Get("/seed", h.Seed)
}

func (h *SeedHandler) Seed(c fiber.Ctx) error {
	res, err := h.uc.Seed(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSeedResponse(res))
}
