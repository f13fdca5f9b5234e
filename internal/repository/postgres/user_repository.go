package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type userRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db, logger: db.logger}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password, first_name, last_name, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Password, user.FirstName, user.LastName,
		user.IsStaff, user.IsSuperuser,
	).Scan(&user.ID)
	if err != nil {
		r.logger.Error("Failed to create user", zap.String("email", user.Email), zap.Error(err))
		return nil, translateError(err)
	}

	return user, nil
}

const userSelect = `
	SELECT id, email, password, first_name, last_name, is_staff, is_superuser
	FROM users
`

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.GetContext(ctx, &user, userSelect+` WHERE id = $1`, id); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.GetContext(ctx, &user, userSelect+` WHERE email = $1`, email); err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET email = $1, password = $2, first_name = $3, last_name = $4
		WHERE id = $5
	`, user.Email, user.Password, user.FirstName, user.LastName, user.ID)
	if err != nil {
		r.logger.Error("Failed to update user", zap.Int64("id", user.ID), zap.Error(err))
		return nil, translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, translateError(errNoRows())
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		r.logger.Error("Failed to update password", zap.Int64("id", userID), zap.Error(err))
		return translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return translateError(errNoRows())
	}
	return nil
}
