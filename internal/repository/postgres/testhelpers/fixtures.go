package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SeedStation inserts a station and returns its ID
func SeedStation(db *sqlx.DB, name string, lat, lon float64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO stations (name, latitude, longitude) VALUES ($1, $2, $3) RETURNING id",
		name, lat, lon).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed station %s: %w", name, err)
	}
	return id, nil
}

// SeedRoute inserts a route between two stations and returns its ID
func SeedRoute(db *sqlx.DB, sourceID, destinationID int64, distance int) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id",
		sourceID, destinationID, distance).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed route %d->%d: %w", sourceID, destinationID, err)
	}
	return id, nil
}

// SeedTrainType inserts a train type and returns its ID
func SeedTrainType(db *sqlx.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO train_types (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed train type %s: %w", name, err)
	}
	return id, nil
}

// SeedTrain inserts a train and returns its ID
func SeedTrain(db *sqlx.DB, name string, cargoNum, placesInCargo int, trainTypeID int64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO trains (name, cargo_num, places_in_cargo, train_type_id) VALUES ($1, $2, $3, $4) RETURNING id",
		name, cargoNum, placesInCargo, trainTypeID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed train %s: %w", name, err)
	}
	return id, nil
}

// SeedCrew inserts a crew member and returns their ID
func SeedCrew(db *sqlx.DB, firstName, lastName string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id",
		firstName, lastName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed crew %s %s: %w", firstName, lastName, err)
	}
	return id, nil
}

// SeedJourney inserts a journey and returns its ID
func SeedJourney(db *sqlx.DB, routeID, trainID int64, departure, arrival time.Time) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO journeys (route_id, train_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id",
		routeID, trainID, departure, arrival).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed journey: %w", err)
	}
	return id, nil
}

// SeedUser inserts a user and returns their ID
func SeedUser(db *sqlx.DB, email, passwordHash string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id",
		email, passwordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed user %s: %w", email, err)
	}
	return id, nil
}
