package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/delivery/http/middleware"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/pkg/utils"
	"github.com/Grenders/transport-api/internal/pkg/validator"
	"github.com/Grenders/transport-api/internal/usecase"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// OrderHandler serves the owner-scoped booking endpoints.
type OrderHandler struct {
	orderUC *usecase.OrderUseCase
	logger  *zap.Logger
}

func NewOrderHandler(orderUC *usecase.OrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Book an order with one or more tickets
// @Description Every ticket is checked against the journey's train capacity
// @Description and seat uniqueness; the whole order succeeds or fails as one.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OrderCreateRequest true "Order payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.orderUC.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, order)
}

// List godoc
// @Summary List the caller's orders, newest first
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.OrderResponse}
// @Router /api/v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)

	orders, total, err := h.orderUC.List(c.Context(), middleware.UserID(c), page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, orders, listMeta(total, page))
}
