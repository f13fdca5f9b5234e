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

// TrainTypeHandler serves the train type reference data endpoints.
type TrainTypeHandler struct {
	trainTypeUC *usecase.TrainTypeUseCase
	logger      *zap.Logger
}

func NewTrainTypeHandler(trainTypeUC *usecase.TrainTypeUseCase, logger *zap.Logger) *TrainTypeHandler {
	return &TrainTypeHandler{
		trainTypeUC: trainTypeUC,
		logger:      logger,
	}
}

// Create godoc
// @Summary Create a train type
// @Tags Train Types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TrainTypeCreateRequest true "Train type payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.TrainTypeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/train-types [post]
func (h *TrainTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.TrainTypeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	trainType, err := h.trainTypeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, trainType)
}

// List godoc
// @Summary List train types
// @Tags Train Types
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TrainTypeResponse}
// @Router /api/v1/train-types [get]
func (h *TrainTypeHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)

	types, total, err := h.trainTypeUC.List(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, types, listMeta(total, page))
}
