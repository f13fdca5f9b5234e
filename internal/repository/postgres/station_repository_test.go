package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/repository/postgres/testhelpers"
)

// StationRepositoryTestSuite tests StationRepository and RouteRepository
type StationRepositoryTestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDB
	stations repository.StationRepository
	routes   repository.RouteRepository
	ctx      context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *StationRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Apply migrations (skip if tables already exist)
	_ = testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)

	s.stations = testhelpers.NewStationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.routes = testhelpers.NewRouteRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *StationRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *StationRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

// ============================================================================
// Station Tests
// ============================================================================

func (s *StationRepositoryTestSuite) TestCreateStation_Success() {
	// Act
	created, err := s.stations.Create(s.ctx, &domain.Station{
		Name:      "Kharkiv",
		Latitude:  49.9935,
		Longitude: 36.2304,
	})

	// Assert
	s.NoError(err)
	s.Require().NotNil(created)
	s.NotZero(created.ID)

	fetched, err := s.stations.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("Kharkiv", fetched.Name)
	s.InDelta(49.9935, fetched.Latitude, 1e-9)
}

func (s *StationRepositoryTestSuite) TestCreateStation_DuplicateName() {
	// Arrange
	_, err := s.stations.Create(s.ctx, &domain.Station{Name: "Odesa", Latitude: 46.48, Longitude: 30.72})
	s.Require().NoError(err)

	// Act
	_, err = s.stations.Create(s.ctx, &domain.Station{Name: "Odesa", Latitude: 46.48, Longitude: 30.72})

	// Assert
	s.Require().Error(err)
	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal("CONFLICT", appErr.Code)
	s.Contains(appErr.Details, "name")
}

func (s *StationRepositoryTestSuite) TestGetStationByID_NotFound() {
	// Act
	_, err := s.stations.GetByID(s.ctx, 9999)

	// Assert
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StationRepositoryTestSuite) TestListStations_Paginated() {
	// Arrange
	for _, name := range []string{"A", "B", "C"} {
		_, err := s.stations.Create(s.ctx, &domain.Station{Name: name})
		s.Require().NoError(err)
	}

	// Act
	page, total, err := s.stations.List(s.ctx, domain.Page{Number: 2, Limit: 2})

	// Assert
	s.NoError(err)
	s.Equal(3, total)
	s.Require().Len(page, 1)
	s.Equal("C", page[0].Name)
}

// ============================================================================
// Route Tests
// ============================================================================

func (s *StationRepositoryTestSuite) seedPair() (int64, int64) {
	srcID, err := testhelpers.SeedStation(s.testDB.DB, "Kyiv", 50.45, 30.52)
	s.Require().NoError(err)
	dstID, err := testhelpers.SeedStation(s.testDB.DB, "Lviv", 49.84, 24.03)
	s.Require().NoError(err)
	return srcID, dstID
}

func (s *StationRepositoryTestSuite) TestCreateRoute_Success() {
	// Arrange
	srcID, dstID := s.seedPair()

	// Act
	created, err := s.routes.Create(s.ctx, &domain.Route{
		SourceID:      srcID,
		DestinationID: dstID,
		Distance:      540,
	})

	// Assert
	s.NoError(err)
	s.NotZero(created.ID)

	fetched, err := s.routes.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal(540, fetched.Distance)
	s.Require().NotNil(fetched.Source)
	s.Require().NotNil(fetched.Destination)
	s.Equal("Kyiv", fetched.Source.Name)
	s.Equal("Lviv", fetched.Destination.Name)
}

func (s *StationRepositoryTestSuite) TestCreateRoute_DuplicatePair() {
	// Arrange
	srcID, dstID := s.seedPair()
	_, err := s.routes.Create(s.ctx, &domain.Route{SourceID: srcID, DestinationID: dstID, Distance: 540})
	s.Require().NoError(err)

	// Act - same pair again; the reverse direction remains allowed
	_, err = s.routes.Create(s.ctx, &domain.Route{SourceID: srcID, DestinationID: dstID, Distance: 540})
	s.Require().Error(err)
	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal("CONFLICT", appErr.Code)

	_, err = s.routes.Create(s.ctx, &domain.Route{SourceID: dstID, DestinationID: srcID, Distance: 540})
	s.NoError(err)
}

func (s *StationRepositoryTestSuite) TestDeleteRoute_NotFound() {
	// Act
	err := s.routes.Delete(s.ctx, 424242)

	// Assert
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// ============================================================================
// Test Suite Runner
// ============================================================================

func TestStationRepositorySuite(t *testing.T) {
	suite.Run(t, new(StationRepositoryTestSuite))
}
