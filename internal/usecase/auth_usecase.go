package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	"github.com/Grenders/transport-api/internal/pkg/auth"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// AuthUseCase covers registration, login and the authenticated profile.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
	now      func() time.Time
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	user, err := uc.userRepo.Create(ctx, &domain.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", zap.Int64("user_id", user.ID))

	resp := dto.ConvertUser(user)
	return &resp, nil
}

// Login never tells the caller which of email or password was wrong.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrUnauthorized
	}

	access, refresh, err := uc.tokens.IssuePair(user.ID, user.Email, uc.now())
	if err != nil {
		uc.logger.Error("Failed to issue token pair", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	return &dto.TokenResponse{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := uc.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	// The account may have been removed since the token was issued.
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	access, refresh, err := uc.tokens.IssuePair(user.ID, user.Email, uc.now())
	if err != nil {
		uc.logger.Error("Failed to issue token pair", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	return &dto.TokenResponse{Access: access, Refresh: refresh}, nil
}

func (uc *AuthUseCase) Profile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertUser(user)
	return &resp, nil
}

// UpdateProfile applies only the fields present in the request.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, req dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			uc.logger.Error("Failed to hash password", zap.Error(err))
			return nil, apperrors.ErrInternalServer
		}
		user.Password = hash
	}

	updated, err := uc.userRepo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertUser(updated)
	return &resp, nil
}
