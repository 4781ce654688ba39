package handler

import (
	"errors"

	"athlete-portal/internal/delivery/http/dto"
	"athlete-portal/internal/delivery/http/middleware"
	"athlete-portal/internal/pkg/response"
	"athlete-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type createApplicationRequest struct {
	ProgramID uuid.UUID `json:"programId" form:"programId"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/applications")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Post("/:id/withdraw", h.Withdraw)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	page, err := h.uc.ListApplications(c.Context(), userID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationsPageResponse(page))
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.Apply(c.Context(), userID, req.ProgramID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewApplicationResponse(saved))
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Withdraw(c.Context(), userID, applicationID); err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrProgramNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Program not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
