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

// UserHandler serves registration, authentication, profile and password
// reset endpoints.
type UserHandler struct {
	authUC  *usecase.AuthUseCase
	resetUC *usecase.PasswordResetUseCase
	logger  *zap.Logger
}

func NewUserHandler(
	authUC *usecase.AuthUseCase,
	resetUC *usecase.PasswordResetUseCase,
	logger *zap.Logger,
) *UserHandler {
	return &UserHandler{
		authUC:  authUC,
		resetUC: resetUC,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, user)
}

// Login godoc
// @Summary Exchange credentials for an access/refresh token pair
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tokens, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tokens, nil)
}

// Refresh godoc
// @Summary Rotate a token pair using a refresh token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} utils.SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/token/refresh [post]
func (h *UserHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tokens, err := h.authUC.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tokens, nil)
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/me [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	user, err := h.authUC.Profile(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, user, nil)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Only the provided fields change; a new password is re-hashed.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfileUpdateRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/me [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.authUC.UpdateProfile(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, user, nil)
}

// RequestPasswordReset godoc
// @Summary Request a password reset email
// @Description Always responds 200 so the endpoint cannot be used to probe
// @Description which addresses are registered.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Account email"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Router /api/v1/users/password-reset [post]
func (h *UserHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.resetUC.Request(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DetailResponse{
		Detail: "If the email is registered, a reset link has been sent",
	}, nil)
}

// ConfirmPasswordReset godoc
// @Summary Confirm a password reset with a token and new password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetConfirmRequest true "Token and new password"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/users/password-reset/confirm [post]
func (h *UserHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.resetUC.Confirm(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DetailResponse{Detail: "Password has been reset"}, nil)
}
