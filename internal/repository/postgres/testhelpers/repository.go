package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain/repository"
	"github.com/Grenders/transport-api/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewStationRepositoryForTest creates a station repository with test database and logger
func NewStationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StationRepository {
	return postgres.NewStationRepository(NewDBForTest(db, logger))
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	return postgres.NewRouteRepository(NewDBForTest(db, logger))
}

// NewTrainTypeRepositoryForTest creates a train type repository with test database and logger
func NewTrainTypeRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TrainTypeRepository {
	return postgres.NewTrainTypeRepository(NewDBForTest(db, logger))
}

// NewTrainRepositoryForTest creates a train repository with test database and logger
func NewTrainRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TrainRepository {
	return postgres.NewTrainRepository(NewDBForTest(db, logger))
}

// NewCrewRepositoryForTest creates a crew repository with test database and logger
func NewCrewRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CrewRepository {
	return postgres.NewCrewRepository(NewDBForTest(db, logger))
}

// NewJourneyRepositoryForTest creates a journey repository with test database and logger
func NewJourneyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.JourneyRepository {
	return postgres.NewJourneyRepository(NewDBForTest(db, logger))
}

// NewOrderRepositoryForTest creates an order repository with test database and logger
func NewOrderRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.OrderRepository {
	return postgres.NewOrderRepository(NewDBForTest(db, logger))
}

// NewUserRepositoryForTest creates a user repository with test database and logger
func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}

// NewResetTokenRepositoryForTest creates a reset token repository with test database and logger
func NewResetTokenRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ResetTokenRepository {
	return postgres.NewResetTokenRepository(NewDBForTest(db, logger))
}
