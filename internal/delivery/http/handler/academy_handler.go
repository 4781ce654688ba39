package handler

import (
	"athlete-portal/internal/delivery/http/dto"
	"athlete-portal/internal/delivery/http/middleware"
	"athlete-portal/internal/pkg/response"
	"athlete-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AcademyHandler struct {
	uc usecase.AcademyUsecase
}

func NewAcademyHandler(uc usecase.AcademyUsecase) *AcademyHandler {
	return &AcademyHandler{uc: uc}
}

func (h *AcademyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/academies", h.List)
}

func (h *AcademyHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListAcademies(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAcademyListResponse(items))
}
