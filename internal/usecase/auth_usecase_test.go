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

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", 30*time.Minute, 24*time.Hour)
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the plaintext", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(mockUsers, newTokenManager(), zap.NewNop())

		mockUsers.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "new@example.com" &&
				u.Password != "secret" &&
				auth.CheckPassword(u.Password, "secret")
		})).Return(&domain.User{ID: 1, Email: "new@example.com"}, nil)

		resp, err := uc.Register(ctx, dto.RegisterRequest{
			Email:     "new@example.com",
			Password:  "secret",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		mockUsers.AssertExpectations(t)
	})

	t.Run("duplicate email conflict passes through", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(mockUsers, newTokenManager(), zap.NewNop())

		conflict := apperrors.ErrConflict.WithField("email", "user with this email already exists")
		mockUsers.On("Create", ctx, mock.Anything).Return(nil, conflict)

		_, err := uc.Register(ctx, dto.RegisterRequest{
			Email: "dup@example.com", Password: "secret", FirstName: "A", LastName: "B",
		})

		assert.Equal(t, conflict, err)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Email: "u@example.com", Password: hash}

	t.Run("valid credentials produce a verifiable pair", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		tokens := newTokenManager()
		uc := usecase.NewAuthUseCase(mockUsers, tokens, zap.NewNop())

		mockUsers.On("GetByEmail", ctx, "u@example.com").Return(user, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "u@example.com", Password: "correct-horse"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Access)
		assert.NotEmpty(t, resp.Refresh)

		claims, err := tokens.Verify(resp.Access, auth.TokenTypeAccess)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)

		// An access token never passes as a refresh token
		_, err = tokens.Verify(resp.Access, auth.TokenTypeRefresh)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(mockUsers, newTokenManager(), zap.NewNop())

		mockUsers.On("GetByEmail", ctx, "u@example.com").Return(user, nil)
		mockUsers.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

		_, errWrong := uc.Login(ctx, dto.LoginRequest{Email: "u@example.com", Password: "nope"})
		_, errGhost := uc.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "nope"})

		assert.ErrorIs(t, errWrong, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, errGhost, apperrors.ErrUnauthorized)
	})
}

func TestAuthUseCase_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		tokens := newTokenManager()
		uc := usecase.NewAuthUseCase(mockUsers, tokens, zap.NewNop())

		_, refresh, err := tokens.IssuePair(1, "u@example.com", time.Now())
		assert.NoError(t, err)

		mockUsers.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "u@example.com"}, nil)

		resp, err := uc.Refresh(ctx, refresh)

		assert.NoError(t, err)
		claims, err := tokens.Verify(resp.Access, auth.TokenTypeAccess)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		tokens := newTokenManager()
		uc := usecase.NewAuthUseCase(mockUsers, tokens, zap.NewNop())

		access, _, err := tokens.IssuePair(1, "u@example.com", time.Now())
		assert.NoError(t, err)

		_, err = uc.Refresh(ctx, access)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("only provided fields change", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(mockUsers, newTokenManager(), zap.NewNop())

		existing := &domain.User{ID: 1, Email: "old@example.com", FirstName: "Old", LastName: "Name", Password: "hash"}
		mockUsers.On("GetByID", ctx, int64(1)).Return(existing, nil)
		mockUsers.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "new@example.com" && u.FirstName == "Old" && u.Password == "hash"
		})).Return(&domain.User{ID: 1, Email: "new@example.com", FirstName: "Old", LastName: "Name"}, nil)

		email := "new@example.com"
		resp, err := uc.UpdateProfile(ctx, 1, dto.ProfileUpdateRequest{Email: &email})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", resp.Email)
		mockUsers.AssertExpectations(t)
	})

	t.Run("password change is re-hashed", func(t *testing.T) {
		mockUsers := &MockUserRepository{}
		uc := usecase.NewAuthUseCase(mockUsers, newTokenManager(), zap.NewNop())

		existing := &domain.User{ID: 1, Email: "u@example.com", Password: "old-hash"}
		mockUsers.On("GetByID", ctx, int64(1)).Return(existing, nil)
		mockUsers.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Password != "old-hash" && auth.CheckPassword(u.Password, "fresh")
		})).Return(existing, nil)

		password := "fresh"
		_, err := uc.UpdateProfile(ctx, 1, dto.ProfileUpdateRequest{Password: &password})

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})
}
