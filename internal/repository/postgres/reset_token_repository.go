package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type resetTokenRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewResetTokenRepository(db *DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db, logger: db.logger}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *domain.PasswordResetToken) (*domain.PasswordResetToken, error) {
	query := `
		INSERT INTO password_reset_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		token.UserID, token.Token, token.ExpiresAt,
	).Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create reset token", zap.Int64("user_id", token.UserID), zap.Error(err))
		return nil, translateError(err)
	}

	return token, nil
}

func (r *resetTokenRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var reset domain.PasswordResetToken
	err := r.db.GetContext(ctx, &reset, `
		SELECT id, user_id, token, created_at, expires_at
		FROM password_reset_tokens
		WHERE token = $1
	`, token)
	if err != nil {
		return nil, translateError(err)
	}
	return &reset, nil
}

func (r *resetTokenRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE token = $1`, token)
	if err != nil {
		r.logger.Error("Failed to delete reset token", zap.Error(err))
		return translateError(err)
	}
	return nil
}

func (r *resetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at < NOW()`)
	if err != nil {
		r.logger.Error("Failed to delete expired reset tokens", zap.Error(err))
		return 0, translateError(err)
	}

	deleted, _ := res.RowsAffected()
	return deleted, nil
}
