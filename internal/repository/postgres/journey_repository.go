package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type journeyRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewJourneyRepository(db *DB) repository.JourneyRepository {
	return &journeyRepository{db: db, logger: db.logger}
}

func (r *journeyRepository) Create(ctx context.Context, journey *domain.Journey) (*domain.Journey, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO journeys (route_id, train_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, journey.RouteID, journey.TrainID, journey.DepartureTime, journey.ArrivalTime,
	).Scan(&journey.ID)
	if err != nil {
		r.logger.Error("Failed to create journey", zap.Error(err))
		return nil, translateError(err)
	}

	if err := replaceCrew(ctx, tx, journey.ID, journey.CrewIDs); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}
	return journey, nil
}

// replaceCrew rewrites the journey's crew assignment inside the caller's tx.
func replaceCrew(ctx context.Context, tx *sqlx.Tx, journeyID int64, crewIDs []int64) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM journey_crews WHERE journey_id = $1`, journeyID); err != nil {
		return err
	}
	for _, crewID := range crewIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO journey_crews (journey_id, crew_id) VALUES ($1, $2)`,
			journeyID, crewID); err != nil {
			return err
		}
	}
	return nil
}

type journeyRow struct {
	ID            int64     `db:"id"`
	RouteID       int64     `db:"route_id"`
	TrainID       int64     `db:"train_id"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`

	RSourceID int64 `db:"r_source_id"`
	RDestID   int64 `db:"r_dest_id"`
	RDistance int   `db:"r_distance"`

	TName     string `db:"t_name"`
	TCargoNum int    `db:"t_cargo_num"`
	TPlaces   int    `db:"t_places"`
	TTypeID   int64  `db:"t_type_id"`
	TTypeName string `db:"t_type_name"`
}

const journeySelect = `
	SELECT j.id, j.route_id, j.train_id, j.departure_time, j.arrival_time,
	       r.source_id AS r_source_id, r.destination_id AS r_dest_id, r.distance AS r_distance,
	       t.name AS t_name, t.cargo_num AS t_cargo_num, t.places_in_cargo AS t_places,
	       t.train_type_id AS t_type_id, tt.name AS t_type_name
	FROM journeys j
	JOIN routes r ON r.id = j.route_id
	JOIN trains t ON t.id = j.train_id
	JOIN train_types tt ON tt.id = t.train_type_id
`

func (row journeyRow) toDomain() *domain.Journey {
	return &domain.Journey{
		ID:            row.ID,
		RouteID:       row.RouteID,
		TrainID:       row.TrainID,
		DepartureTime: row.DepartureTime,
		ArrivalTime:   row.ArrivalTime,
		Route: &domain.Route{
			ID:            row.RouteID,
			SourceID:      row.RSourceID,
			DestinationID: row.RDestID,
			Distance:      row.RDistance,
		},
		Train: &domain.Train{
			ID:            row.TrainID,
			Name:          row.TName,
			CargoNum:      row.TCargoNum,
			PlacesInCargo: row.TPlaces,
			TrainTypeID:   row.TTypeID,
			TrainType:     &domain.TrainType{ID: row.TTypeID, Name: row.TTypeName},
		},
	}
}

func (r *journeyRepository) GetByID(ctx context.Context, id int64) (*domain.Journey, error) {
	var row journeyRow
	if err := r.db.GetContext(ctx, &row, journeySelect+` WHERE j.id = $1`, id); err != nil {
		return nil, translateError(err)
	}

	journey := row.toDomain()
	if err := r.loadCrew(ctx, []*domain.Journey{journey}); err != nil {
		return nil, err
	}

	// Route detail needs the stations loaded too.
	if err := r.loadRouteStations(ctx, journey.Route); err != nil {
		return nil, err
	}

	return journey, nil
}

func (r *journeyRepository) loadRouteStations(ctx context.Context, route *domain.Route) error {
	var stations []*domain.Station
	err := r.db.SelectContext(ctx, &stations, `
		SELECT id, name, latitude, longitude FROM stations WHERE id = ANY($1)
	`, pq.Array([]int64{route.SourceID, route.DestinationID}))
	if err != nil {
		r.logger.Error("Failed to load route stations", zap.Error(err))
		return translateError(err)
	}

	for _, s := range stations {
		if s.ID == route.SourceID {
			route.Source = s
		}
		if s.ID == route.DestinationID {
			route.Destination = s
		}
	}
	return nil
}

// loadCrew attaches crew members to the journeys in one batch query.
func (r *journeyRepository) loadCrew(ctx context.Context, journeys []*domain.Journey) error {
	if len(journeys) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Journey, len(journeys))
	ids := make([]int64, 0, len(journeys))
	for _, j := range journeys {
		byID[j.ID] = j
		ids = append(ids, j.ID)
		j.Crew = []*domain.Crew{}
		j.CrewIDs = []int64{}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT jc.journey_id, c.id, c.first_name, c.last_name
		FROM journey_crews jc
		JOIN crews c ON c.id = jc.crew_id
		WHERE jc.journey_id = ANY($1)
		ORDER BY c.id
	`, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load journey crews", zap.Error(err))
		return translateError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var journeyID int64
		var crew domain.Crew
		if err := rows.Scan(&journeyID, &crew.ID, &crew.FirstName, &crew.LastName); err != nil {
			return translateError(err)
		}
		if j, ok := byID[journeyID]; ok {
			j.Crew = append(j.Crew, &crew)
			j.CrewIDs = append(j.CrewIDs, crew.ID)
		}
	}
	return translateError(rows.Err())
}

// buildJourneyFilter appends WHERE clauses for the optional journey filters.
func buildJourneyFilter(filter domain.JourneyFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if len(filter.RouteIDs) > 0 {
		add("j.route_id = ANY($%d)", pq.Array(filter.RouteIDs))
	}
	if len(filter.TrainIDs) > 0 {
		add("j.train_id = ANY($%d)", pq.Array(filter.TrainIDs))
	}
	if len(filter.CrewIDs) > 0 {
		add("EXISTS (SELECT 1 FROM journey_crews jc WHERE jc.journey_id = j.id AND jc.crew_id = ANY($%d))", pq.Array(filter.CrewIDs))
	}
	if filter.DepartureAfter != nil {
		add("j.departure_time >= $%d", *filter.DepartureAfter)
	}
	if filter.ArrivalBefore != nil {
		add("j.arrival_time <= $%d", *filter.ArrivalBefore)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *journeyRepository) List(ctx context.Context, filter domain.JourneyFilter, page domain.Page) ([]*domain.Journey, int, error) {
	where, args := buildJourneyFilter(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM journeys j` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count journeys", zap.Error(err))
		return nil, 0, translateError(err)
	}

	listQuery := fmt.Sprintf("%s%s ORDER BY j.id LIMIT $%d OFFSET $%d",
		journeySelect, where, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset())

	var rows []journeyRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		r.logger.Error("Failed to list journeys", zap.Error(err))
		return nil, 0, translateError(err)
	}

	journeys := make([]*domain.Journey, 0, len(rows))
	for _, row := range rows {
		journeys = append(journeys, row.toDomain())
	}
	if err := r.loadCrew(ctx, journeys); err != nil {
		return nil, 0, err
	}

	return journeys, total, nil
}

func (r *journeyRepository) Update(ctx context.Context, journey *domain.Journey) (*domain.Journey, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE journeys
		SET route_id = $1, train_id = $2, departure_time = $3, arrival_time = $4
		WHERE id = $5
	`, journey.RouteID, journey.TrainID, journey.DepartureTime, journey.ArrivalTime, journey.ID)
	if err != nil {
		r.logger.Error("Failed to update journey", zap.Int64("id", journey.ID), zap.Error(err))
		return nil, translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, translateError(errNoRows())
	}

	if err := replaceCrew(ctx, tx, journey.ID, journey.CrewIDs); err != nil {
		return nil, translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}
	return journey, nil
}

func (r *journeyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journeys WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete journey", zap.Int64("id", id), zap.Error(err))
		return translateError(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return translateError(errNoRows())
	}
	return nil
}
