package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type trainTypeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTrainTypeRepository(db *DB) repository.TrainTypeRepository {
	return &trainTypeRepository{db: db, logger: db.logger}
}

func (r *trainTypeRepository) Create(ctx context.Context, trainType *domain.TrainType) (*domain.TrainType, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO train_types (name) VALUES ($1) RETURNING id`,
		trainType.Name,
	).Scan(&trainType.ID)
	if err != nil {
		r.logger.Error("Failed to create train type", zap.String("name", trainType.Name), zap.Error(err))
		return nil, translateError(err)
	}
	return trainType, nil
}

func (r *trainTypeRepository) GetByID(ctx context.Context, id int64) (*domain.TrainType, error) {
	var trainType domain.TrainType
	err := r.db.GetContext(ctx, &trainType,
		`SELECT id, name FROM train_types WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &trainType, nil
}

func (r *trainTypeRepository) List(ctx context.Context, page domain.Page) ([]*domain.TrainType, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM train_types`); err != nil {
		return nil, 0, translateError(err)
	}

	types := make([]*domain.TrainType, 0)
	err := r.db.SelectContext(ctx, &types, `
		SELECT id, name FROM train_types ORDER BY id LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset())
	if err != nil {
		r.logger.Error("Failed to list train types", zap.Error(err))
		return nil, 0, translateError(err)
	}

	return types, total, nil
}

type trainRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTrainRepository(db *DB) repository.TrainRepository {
	return &trainRepository{db: db, logger: db.logger}
}

func (r *trainRepository) Create(ctx context.Context, train *domain.Train) (*domain.Train, error) {
	query := `
		INSERT INTO trains (name, cargo_num, places_in_cargo, train_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		train.Name, train.CargoNum, train.PlacesInCargo, train.TrainTypeID,
	).Scan(&train.ID)
	if err != nil {
		r.logger.Error("Failed to create train", zap.String("name", train.Name), zap.Error(err))
		return nil, translateError(err)
	}

	return train, nil
}

func (r *trainRepository) GetByID(ctx context.Context, id int64) (*domain.Train, error) {
	query := `
		SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, t.train_type_id,
		       tt.id AS "tt.id", tt.name AS "tt.name"
		FROM trains t
		JOIN train_types tt ON tt.id = t.train_type_id
		WHERE t.id = $1
	`

	var row struct {
		domain.Train
		TTID   int64  `db:"tt.id"`
		TTName string `db:"tt.name"`
	}
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, translateError(err)
	}

	train := row.Train
	train.TrainType = &domain.TrainType{ID: row.TTID, Name: row.TTName}
	return &train, nil
}

// buildTrainFilter appends WHERE clauses for the optional train filters.
func buildTrainFilter(filter domain.TrainFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	next := func() string { return fmt.Sprintf("$%d", len(args)+1) }

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		clauses = append(clauses, "t.name ILIKE "+fmt.Sprintf("$%d", len(args)))
	}
	if filter.CargoNum != nil {
		args = append(args, *filter.CargoNum)
		clauses = append(clauses, "t.cargo_num = "+fmt.Sprintf("$%d", len(args)))
	}
	if filter.PlacesInCargo != nil {
		args = append(args, *filter.PlacesInCargo)
		clauses = append(clauses, "t.places_in_cargo = "+fmt.Sprintf("$%d", len(args)))
	}
	if len(filter.TrainTypeIDs) > 0 {
		placeholder := next()
		args = append(args, pq.Array(filter.TrainTypeIDs))
		clauses = append(clauses, "t.train_type_id = ANY("+placeholder+")")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *trainRepository) List(ctx context.Context, filter domain.TrainFilter, page domain.Page) ([]*domain.Train, int, error) {
	where, args := buildTrainFilter(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM trains t` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count trains", zap.Error(err))
		return nil, 0, translateError(err)
	}

	listQuery := fmt.Sprintf(`
		SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, t.train_type_id
		FROM trains t%s
		ORDER BY t.id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset())

	trains := make([]*domain.Train, 0)
	if err := r.db.SelectContext(ctx, &trains, listQuery, args...); err != nil {
		r.logger.Error("Failed to list trains", zap.Error(err))
		return nil, 0, translateError(err)
	}

	return trains, total, nil
}

func (r *trainRepository) Update(ctx context.Context, train *domain.Train) (*domain.Train, error) {
	query := `
		UPDATE trains
		SET name = $1, cargo_num = $2, places_in_cargo = $3, train_type_id = $4
		WHERE id = $5
	`

	res, err := r.db.ExecContext(ctx, query,
		train.Name, train.CargoNum, train.PlacesInCargo, train.TrainTypeID, train.ID)
	if err != nil {
		r.logger.Error("Failed to update train", zap.Int64("id", train.ID), zap.Error(err))
		return nil, translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, translateError(errNoRows())
	}

	return train, nil
}

func (r *trainRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trains WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete train", zap.Int64("id", id), zap.Error(err))
		return translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return translateError(errNoRows())
	}
	return nil
}
