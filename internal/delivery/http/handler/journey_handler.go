package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/pkg/utils"
	"github.com/Grenders/transport-api/internal/pkg/validator"
	"github.com/Grenders/transport-api/internal/usecase"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// JourneyHandler serves the journey CRUD endpoints.
type JourneyHandler struct {
	journeyUC *usecase.JourneyUseCase
	logger    *zap.Logger
}

func NewJourneyHandler(journeyUC *usecase.JourneyUseCase, logger *zap.Logger) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: journeyUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Schedule a journey
// @Description Departure must not be in the past and arrival must not precede departure.
// @Tags Journeys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JourneyRequest true "Journey payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.JourneyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/journeys [post]
func (h *JourneyHandler) Create(c *fiber.Ctx) error {
	var req dto.JourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	journey, err := h.journeyUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, journey)
}

// GetByID godoc
// @Summary Get a journey with route, train and crew expanded
// @Tags Journeys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Journey ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.JourneyDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/journeys/{id} [get]
func (h *JourneyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	journey, err := h.journeyUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, journey, nil)
}

// List godoc
// @Summary List journeys
// @Description Filters: comma-separated route/train/crew IDs and
// @Description departure_after/arrival_before RFC3339 timestamps.
// @Tags Journeys
// @Produce json
// @Security BearerAuth
// @Param route query string false "Comma-separated route IDs"
// @Param train query string false "Comma-separated train IDs"
// @Param crew query string false "Comma-separated crew IDs"
// @Param departure_after query string false "RFC3339 lower bound on departure"
// @Param arrival_before query string false "RFC3339 upper bound on arrival"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.JourneyListResponse}
// @Router /api/v1/journeys [get]
func (h *JourneyHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)

	filter := domain.JourneyFilter{
		RouteIDs: utils.ParseIDList(c.Query("route")),
		TrainIDs: utils.ParseIDList(c.Query("train")),
		CrewIDs:  utils.ParseIDList(c.Query("crew")),
	}

	if raw := c.Query("departure_after"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.SendError(c,
				apperrors.ErrValidation.WithField("departure_after", "must be an RFC3339 timestamp"))
		}
		filter.DepartureAfter = &ts
	}
	if raw := c.Query("arrival_before"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.SendError(c,
				apperrors.ErrValidation.WithField("arrival_before", "must be an RFC3339 timestamp"))
		}
		filter.ArrivalBefore = &ts
	}

	journeys, total, err := h.journeyUC.List(c.Context(), filter, page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, journeys, listMeta(total, page))
}

// Update godoc
// @Summary Reschedule a journey
// @Description Rejected once the persisted departure time has passed.
// @Tags Journeys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Journey ID"
// @Param request body dto.JourneyRequest true "Journey payload"
// @Success 200 {object} utils.SuccessResponse{data=dto.JourneyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/journeys/{id} [put]
func (h *JourneyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.JourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	journey, err := h.journeyUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, journey, nil)
}

// Delete godoc
// @Summary Delete a journey
// @Tags Journeys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Journey ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/journeys/{id} [delete]
func (h *JourneyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.journeyUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DetailResponse{Detail: "Journey deleted"}, nil)
}
