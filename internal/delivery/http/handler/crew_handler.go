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

// CrewHandler serves the crew member CRUD endpoints.
type CrewHandler struct {
	crewUC *usecase.CrewUseCase
	logger *zap.Logger
}

func NewCrewHandler(crewUC *usecase.CrewUseCase, logger *zap.Logger) *CrewHandler {
	return &CrewHandler{
		crewUC: crewUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Create a crew member
// @Tags Crews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CrewRequest true "Crew payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.CrewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/crews [post]
func (h *CrewHandler) Create(c *fiber.Ctx) error {
	var req dto.CrewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	crew, err := h.crewUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, crew)
}

// GetByID godoc
// @Summary Get a crew member
// @Tags Crews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.CrewResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/crews/{id} [get]
func (h *CrewHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	crew, err := h.crewUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, crew, nil)
}

// List godoc
// @Summary List crew members
// @Tags Crews
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CrewResponse}
// @Router /api/v1/crews [get]
func (h *CrewHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)

	crews, total, err := h.crewUC.List(c.Context(), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, crews, listMeta(total, page))
}

// Update godoc
// @Summary Update a crew member
// @Tags Crews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew ID"
// @Param request body dto.CrewRequest true "Crew payload"
// @Success 200 {object} utils.SuccessResponse{data=dto.CrewResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/crews/{id} [put]
func (h *CrewHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CrewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	crew, err := h.crewUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, crew, nil)
}

// Delete godoc
// @Summary Delete a crew member
// @Tags Crews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Crew ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/crews/{id} [delete]
func (h *CrewHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.crewUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DetailResponse{Detail: "Crew member deleted"}, nil)
}
