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

type RecordingHandler struct {
	uc usecase.RecordingUsecase
}

type addRecordingRequest struct {
	Title       string `json:"title" form:"title"`
	URL         string `json:"url" form:"url"`
	Description string `json:"description" form:"description"`
}

func NewRecordingHandler(uc usecase.RecordingUsecase) *RecordingHandler {
	return &RecordingHandler{uc: uc}
}

func (h *RecordingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/recordings")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Delete("/:id", h.Delete)
}

func (h *RecordingHandler) List(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListRecordings(c.Context(), userID)
	if err != nil {
		return mapRecordingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecordingListResponse(items))
}

func (h *RecordingHandler) Add(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req addRecordingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.AddRecording(c.Context(), userID, usecase.AddRecordingInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		return mapRecordingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewRecordingResponse(saved))
}

func (h *RecordingHandler) Delete(c fiber.Ctx) error {
	userID, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	recordingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteRecording(c.Context(), userID, recordingID); err != nil {
		return mapRecordingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapRecordingUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrNoAthleteProfile):
		return middleware.NewAppError(fiber.StatusNotFound, "No athlete profile", nil, err)
	case errors.Is(err, usecase.ErrRecordingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Recording not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
