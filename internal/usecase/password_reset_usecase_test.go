package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/pkg/auth"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/usecase"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

const resetURL = "https://example.com/reset"

func resetDeps() (*MockUserRepository, *MockResetTokenRepository, *MockStreamRepository, *usecase.PasswordResetUseCase) {
	mockUsers := &MockUserRepository{}
	mockTokens := &MockResetTokenRepository{}
	mockStream := &MockStreamRepository{}
	uc := usecase.NewPasswordResetUseCase(mockUsers, mockTokens, mockStream, resetURL, zap.NewNop())
	return mockUsers, mockTokens, mockStream, uc
}

func TestPasswordResetUseCase_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("known email creates token and publishes mail event", func(t *testing.T) {
		mockUsers, mockTokens, mockStream, uc := resetDeps()

		mockUsers.On("GetByEmail", ctx, "u@example.com").Return(&domain.User{ID: 1, Email: "u@example.com"}, nil)

		var issued string
		mockTokens.On("Create", ctx, mock.MatchedBy(func(tok *domain.PasswordResetToken) bool {
			issued = tok.Token
			// Opaque 32-char hex value with roughly an hour to live
			return tok.UserID == 1 && len(tok.Token) == 32 &&
				time.Until(tok.ExpiresAt) > 55*time.Minute
		})).Return(&domain.PasswordResetToken{ID: 1}, nil)

		mockStream.On("PublishToStream", ctx, domain.StreamMailReset, mock.MatchedBy(func(data interface{}) bool {
			event, ok := data.(domain.PasswordResetMailEvent)
			return ok && event.Email == "u@example.com" &&
				event.Token == issued &&
				event.ResetURL == resetURL+"?token="+issued
		})).Return(nil)

		assert.NoError(t, uc.Request(ctx, dto.PasswordResetRequest{Email: "u@example.com"}))
		mockTokens.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("unknown email still succeeds and sends nothing", func(t *testing.T) {
		mockUsers, mockTokens, mockStream, uc := resetDeps()

		mockUsers.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

		assert.NoError(t, uc.Request(ctx, dto.PasswordResetRequest{Email: "ghost@example.com"}))
		mockTokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockStream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure is swallowed after the token exists", func(t *testing.T) {
		mockUsers, mockTokens, mockStream, uc := resetDeps()

		mockUsers.On("GetByEmail", ctx, "u@example.com").Return(&domain.User{ID: 1, Email: "u@example.com"}, nil)
		mockTokens.On("Create", ctx, mock.Anything).Return(&domain.PasswordResetToken{ID: 1}, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamMailReset, mock.Anything).
			Return(assert.AnError)

		assert.NoError(t, uc.Request(ctx, dto.PasswordResetRequest{Email: "u@example.com"}))
	})
}

func TestPasswordResetUseCase_Confirm(t *testing.T) {
	ctx := context.Background()
	validToken := "0123456789abcdef0123456789abcdef"

	liveToken := func() *domain.PasswordResetToken {
		return &domain.PasswordResetToken{
			ID:        1,
			UserID:    7,
			Token:     validToken,
			ExpiresAt: time.Now().Add(30 * time.Minute),
		}
	}

	t.Run("success updates hash and burns the token", func(t *testing.T) {
		mockUsers, mockTokens, _, uc := resetDeps()

		mockTokens.On("GetByToken", ctx, validToken).Return(liveToken(), nil)
		mockUsers.On("UpdatePassword", ctx, int64(7), mock.MatchedBy(func(hash string) bool {
			return auth.CheckPassword(hash, "N3w!Passw0rd")
		})).Return(nil)
		mockTokens.On("Delete", ctx, validToken).Return(nil)

		err := uc.Confirm(ctx, dto.PasswordResetConfirmRequest{
			Token:       validToken,
			NewPassword: "N3w!Passw0rd",
		})

		assert.NoError(t, err)
		mockTokens.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockUsers, mockTokens, _, uc := resetDeps()

		mockTokens.On("GetByToken", ctx, "missing").Return(nil, apperrors.ErrNotFound)

		err := uc.Confirm(ctx, dto.PasswordResetConfirmRequest{Token: "missing", NewPassword: "N3w!Passw0rd"})

		appErr := err.(*apperrors.AppError)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Contains(t, appErr.Details, "token")
		mockUsers.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expired token", func(t *testing.T) {
		mockUsers, mockTokens, _, uc := resetDeps()

		expired := liveToken()
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		mockTokens.On("GetByToken", ctx, validToken).Return(expired, nil)

		err := uc.Confirm(ctx, dto.PasswordResetConfirmRequest{Token: validToken, NewPassword: "N3w!Passw0rd"})

		appErr := err.(*apperrors.AppError)
		assert.Contains(t, appErr.Details, "token")
		mockUsers.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weak passwords are rejected with the violated rule", func(t *testing.T) {
		cases := []struct {
			name     string
			password string
		}{
			{"too short", "Ab1!"},
			{"no uppercase", "weak1pass!"},
			{"no digit", "Weakpass!"},
			{"no special", "Weakpass1"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockUsers, mockTokens, _, uc := resetDeps()
				mockTokens.On("GetByToken", ctx, validToken).Return(liveToken(), nil)

				err := uc.Confirm(ctx, dto.PasswordResetConfirmRequest{
					Token:       validToken,
					NewPassword: tc.password,
				})

				assert.Error(t, err)
				appErr := err.(*apperrors.AppError)
				assert.Contains(t, appErr.Details, "new_password")
				mockUsers.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
				// The token survives a failed confirmation
				mockTokens.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			})
		}
	})
}
