package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	"github.com/Grenders/transport-api/internal/pkg/auth"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// PasswordResetUseCase issues single-use reset tokens and applies confirmed
// resets. Mail delivery is asynchronous through the Redis Stream; the
// request operation never reveals whether the address is registered.
type PasswordResetUseCase struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.ResetTokenRepository
	streamRepo repository.StreamRepository
	resetURL   string
	logger     *zap.Logger
	now        func() time.Time
}

func NewPasswordResetUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.ResetTokenRepository,
	streamRepo repository.StreamRepository,
	resetURL string,
	logger *zap.Logger,
) *PasswordResetUseCase {
	return &PasswordResetUseCase{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		streamRepo: streamRepo,
		resetURL:   resetURL,
		logger:     logger,
		now:        time.Now,
	}
}

// Request issues a token and publishes the mail event. It succeeds even for
// unknown addresses and even when publishing fails; failures are only logged.
func (uc *PasswordResetUseCase) Request(ctx context.Context, req dto.PasswordResetRequest) error {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrNotFound {
			uc.logger.Info("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	_, err = uc.tokenRepo.Create(ctx, &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: uc.now().Add(domain.ResetTokenTTL),
	})
	if err != nil {
		return err
	}

	event := domain.PasswordResetMailEvent{
		Email:    user.Email,
		Token:    token,
		ResetURL: fmt.Sprintf("%s?token=%s", uc.resetURL, token),
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamMailReset, event); err != nil {
		uc.logger.Error("Failed to publish password reset mail event",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
	}

	return nil
}

// Confirm validates the token and the new password, updates the hash and
// burns the token.
func (uc *PasswordResetUseCase) Confirm(ctx context.Context, req dto.PasswordResetConfirmRequest) error {
	reset, err := uc.tokenRepo.GetByToken(ctx, req.Token)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.ErrValidation.WithField("token", "Invalid or expired token")
		}
		return err
	}
	if reset.IsExpired(uc.now()) {
		return apperrors.ErrValidation.WithField("token", "Invalid or expired token")
	}

	if err := auth.ValidateStrongPassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return apperrors.ErrInternalServer
	}

	if err := uc.userRepo.UpdatePassword(ctx, reset.UserID, hash); err != nil {
		return err
	}

	// Single use: the token dies with the successful reset.
	if err := uc.tokenRepo.Delete(ctx, req.Token); err != nil {
		uc.logger.Warn("Failed to delete used reset token", zap.Error(err))
	}

	uc.logger.Info("Password reset completed", zap.Int64("user_id", reset.UserID))
	return nil
}
