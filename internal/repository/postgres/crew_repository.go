package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type crewRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewCrewRepository(db *DB) repository.CrewRepository {
	return &crewRepository{db: db, logger: db.logger}
}

func (r *crewRepository) Create(ctx context.Context, crew *domain.Crew) (*domain.Crew, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName,
	).Scan(&crew.ID)
	if err != nil {
		r.logger.Error("Failed to create crew member", zap.Error(err))
		return nil, translateError(err)
	}
	return crew, nil
}

func (r *crewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var crew domain.Crew
	err := r.db.GetContext(ctx, &crew,
		`SELECT id, first_name, last_name FROM crews WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &crew, nil
}

func (r *crewRepository) List(ctx context.Context, page domain.Page) ([]*domain.Crew, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM crews`); err != nil {
		return nil, 0, translateError(err)
	}

	crews := make([]*domain.Crew, 0)
	err := r.db.SelectContext(ctx, &crews, `
		SELECT id, first_name, last_name FROM crews ORDER BY id LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset())
	if err != nil {
		r.logger.Error("Failed to list crews", zap.Error(err))
		return nil, 0, translateError(err)
	}

	return crews, total, nil
}

func (r *crewRepository) Update(ctx context.Context, crew *domain.Crew) (*domain.Crew, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE crews SET first_name = $1, last_name = $2 WHERE id = $3`,
		crew.FirstName, crew.LastName, crew.ID)
	if err != nil {
		r.logger.Error("Failed to update crew member", zap.Int64("id", crew.ID), zap.Error(err))
		return nil, translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, translateError(errNoRows())
	}
	return crew, nil
}

func (r *crewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete crew member", zap.Int64("id", id), zap.Error(err))
		return translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return translateError(errNoRows())
	}
	return nil
}
