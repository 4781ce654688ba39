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

type StatHandler struct {
	uc usecase.StatUsecase
}

type addStatRequest struct {
	Category    string `json:"category" form:"category"`
	Name        string `json:"name" form:"name"`
	Unit        string `json:"unit" form:"unit"`
	ValueNumber string `json:"valueNumber" form:"valueNumber"`
	ValueString string `json:"valueString" form:"valueString"`
}

func NewStatHandler(uc usecase.StatUsecase) *StatHandler {
	return &StatHandler{uc: uc}
}

func (h *StatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/stats")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Delete("/:id", h.Delete)
}

func (h *StatHandler) List(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListStats(c.Context(), userID)
	if err != nil {
		return mapStatUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStatListResponse(items))
}

func (h *StatHandler) Add(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req addStatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.AddStat(c.Context(), userID, usecase.AddStatInput{
		Category:    req.Category,
		Name:        req.Name,
		Unit:        req.Unit,
		ValueNumber: req.ValueNumber,
		ValueString: req.ValueString,
	})
	if err != nil {
		return mapStatUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewStatResponse(saved))
}

func (h *StatHandler) Delete(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	statID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteStat(c.Context(), userID, statID); err != nil {
		return mapStatUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapStatUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrNoAthleteProfile):
		return middleware.NewAppError(fiber.StatusNotFound, "No athlete profile", nil, err)
	case errors.Is(err, usecase.ErrStatNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Stat not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
