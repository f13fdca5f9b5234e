package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/pkg/utils"
	"github.com/Grenders/transport-api/internal/pkg/validator"
	"github.com/Grenders/transport-api/internal/usecase"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// StationHandler serves the station reference data endpoints.
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Create a station
// @Tags Stations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StationCreateRequest true "Station payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.StationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/stations [post]
func (h *StationHandler) Create(c *fiber.Ctx) error {
	var req dto.StationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, station)
}

// List godoc
// @Summary List stations
// @Tags Stations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StationResponse}
// @Router /api/v1/stations [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)

	stations, total, err := h.stationUC.List(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, listMeta(total, page))
}
