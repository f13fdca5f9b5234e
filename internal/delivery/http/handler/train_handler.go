package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/pkg/utils"
	"github.com/Grenders/transport-api/internal/pkg/validator"
	"github.com/Grenders/transport-api/internal/usecase"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// TrainHandler serves the train CRUD endpoints.
type TrainHandler struct {
	trainUC *usecase.TrainUseCase
	logger  *zap.Logger
}

func NewTrainHandler(trainUC *usecase.TrainUseCase, logger *zap.Logger) *TrainHandler {
	return &TrainHandler{
		trainUC: trainUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Create a train
// @Tags Trains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TrainRequest true "Train payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.TrainResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/trains [post]
func (h *TrainHandler) Create(c *fiber.Ctx) error {
	var req dto.TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	train, err := h.trainUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, train)
}

// GetByID godoc
// @Summary Get a train with its type embedded
// @Tags Trains
// @Produce json
// @Security BearerAuth
// @Param id path int true "Train ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.TrainDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id} [get]
func (h *TrainHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	train, err := h.trainUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, train, nil)
}

// List godoc
// @Summary List trains
// @Description Filters: name substring (case-insensitive), exact cargo_num,
// @Description exact places_in_cargo, comma-separated train_types IDs.
// @Tags Trains
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name substring"
// @Param cargo_num query int false "Exact cargo count"
// @Param places_in_cargo query int false "Exact places per cargo"
// @Param train_types query string false "Comma-separated train type IDs"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TrainResponse}
// @Router /api/v1/trains [get]
func (h *TrainHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)

	filter := domain.TrainFilter{
		Name:         c.Query("name"),
		TrainTypeIDs: utils.ParseIDList(c.Query("train_types")),
	}
	if v := c.QueryInt("cargo_num", -1); v >= 0 {
		filter.CargoNum = &v
	}
	if v := c.QueryInt("places_in_cargo", -1); v >= 0 {
		filter.PlacesInCargo = &v
	}

	trains, total, err := h.trainUC.List(c.Context(), filter, page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trains, listMeta(total, page))
}

// Update godoc
// @Summary Update a train
// @Tags Trains
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Train ID"
// @Param request body dto.TrainRequest true "Train payload"
// @Success 200 {object} utils.SuccessResponse{data=dto.TrainResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id} [put]
func (h *TrainHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TrainRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	train, err := h.trainUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, train, nil)
}

// Delete godoc
// @Summary Delete a train
// @Tags Trains
// @Produce json
// @Security BearerAuth
// @Param id path int true "Train ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/trains/{id} [delete]
func (h *TrainHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.trainUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DetailResponse{Detail: "Train deleted"}, nil)
}
