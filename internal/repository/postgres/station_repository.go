package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type stationRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *stationRepository) Create(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	query := `
		INSERT INTO stations (name, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		station.Name, station.Latitude, station.Longitude,
	).Scan(&station.ID)
	if err != nil {
		r.logger.Error("Failed to create station", zap.String("name", station.Name), zap.Error(err))
		return nil, translateError(err)
	}

	return station, nil
}

func (r *stationRepository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	var station domain.Station
	err := r.db.GetContext(ctx, &station,
		`SELECT id, name, latitude, longitude FROM stations WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &station, nil
}

func (r *stationRepository) List(ctx context.Context, page domain.Page) ([]*domain.Station, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM stations`); err != nil {
		r.logger.Error("Failed to count stations", zap.Error(err))
		return nil, 0, translateError(err)
	}

	stations := make([]*domain.Station, 0)
	err := r.db.SelectContext(ctx, &stations, `
		SELECT id, name, latitude, longitude
		FROM stations
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset())
	if err != nil {
		r.logger.Error("Failed to list stations", zap.Error(err))
		return nil, 0, translateError(err)
	}

	return stations, total, nil
}
