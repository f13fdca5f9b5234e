package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type routeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{db: db, logger: db.logger}
}

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	query := `
		INSERT INTO routes (source_id, destination_id, distance)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		route.SourceID, route.DestinationID, route.Distance,
	).Scan(&route.ID)
	if err != nil {
		r.logger.Error("Failed to create route",
			zap.Int64("source", route.SourceID),
			zap.Int64("destination", route.DestinationID),
			zap.Error(err))
		return nil, translateError(err)
	}

	return route, nil
}

// routeRow flattens the route join for sqlx scanning.
type routeRow struct {
	ID            int64   `db:"id"`
	SourceID      int64   `db:"source_id"`
	DestinationID int64   `db:"destination_id"`
	Distance      int     `db:"distance"`
	SrcName       string  `db:"src_name"`
	SrcLat        float64 `db:"src_lat"`
	SrcLon        float64 `db:"src_lon"`
	DstName       string  `db:"dst_name"`
	DstLat        float64 `db:"dst_lat"`
	DstLon        float64 `db:"dst_lon"`
}

func (row routeRow) toDomain() *domain.Route {
	return &domain.Route{
		ID:            row.ID,
		SourceID:      row.SourceID,
		DestinationID: row.DestinationID,
		Distance:      row.Distance,
		Source: &domain.Station{
			ID: row.SourceID, Name: row.SrcName,
			Latitude: row.SrcLat, Longitude: row.SrcLon,
		},
		Destination: &domain.Station{
			ID: row.DestinationID, Name: row.DstName,
			Latitude: row.DstLat, Longitude: row.DstLon,
		},
	}
}

const routeSelect = `
	SELECT r.id, r.source_id, r.destination_id, r.distance,
	       src.name AS src_name, src.latitude AS src_lat, src.longitude AS src_lon,
	       dst.name AS dst_name, dst.latitude AS dst_lat, dst.longitude AS dst_lon
	FROM routes r
	JOIN stations src ON src.id = r.source_id
	JOIN stations dst ON dst.id = r.destination_id
`

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	var row routeRow
	if err := r.db.GetContext(ctx, &row, routeSelect+` WHERE r.id = $1`, id); err != nil {
		return nil, translateError(err)
	}
	return row.toDomain(), nil
}

func (r *routeRepository) List(ctx context.Context, page domain.Page) ([]*domain.Route, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM routes`); err != nil {
		return nil, 0, translateError(err)
	}

	var rows []routeRow
	err := r.db.SelectContext(ctx, &rows,
		routeSelect+` ORDER BY r.id LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset())
	if err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, 0, translateError(err)
	}

	routes := make([]*domain.Route, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, row.toDomain())
	}
	return routes, total, nil
}

func (r *routeRepository) Update(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE routes SET source_id = $1, destination_id = $2, distance = $3
		WHERE id = $4
	`, route.SourceID, route.DestinationID, route.Distance, route.ID)
	if err != nil {
		r.logger.Error("Failed to update route", zap.Int64("id", route.ID), zap.Error(err))
		return nil, translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, translateError(errNoRows())
	}

	return route, nil
}

func (r *routeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete route", zap.Int64("id", id), zap.Error(err))
		return translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return translateError(errNoRows())
	}
	return nil
}
