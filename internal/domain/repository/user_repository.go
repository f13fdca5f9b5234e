package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// UserRepository persists user accounts. The storage layer enforces email
// uniqueness.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// ResetTokenRepository persists password-reset tokens.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) (*domain.PasswordResetToken, error)
	GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes tokens past their expiry, returning how many
	// were deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
