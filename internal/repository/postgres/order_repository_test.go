package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/repository/postgres/testhelpers"
)

// OrderRepositoryTestSuite tests all methods of OrderRepository
type OrderRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.OrderRepository
	ctx    context.Context

	userID    int64
	journeyID int64
}

// SetupSuite runs once before all tests in the suite
func (s *OrderRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Apply migrations (skip if tables already exist)
	_ = testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)

	s.repo = testhelpers.NewOrderRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *OrderRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test and rebuilds the booking fixture graph
func (s *OrderRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))

	sourceID, err := testhelpers.SeedStation(s.testDB.DB, "Kyiv", 50.4501, 30.5234)
	s.Require().NoError(err)
	destID, err := testhelpers.SeedStation(s.testDB.DB, "Lviv", 49.8397, 24.0297)
	s.Require().NoError(err)
	routeID, err := testhelpers.SeedRoute(s.testDB.DB, sourceID, destID, 540)
	s.Require().NoError(err)
	typeID, err := testhelpers.SeedTrainType(s.testDB.DB, "Intercity")
	s.Require().NoError(err)
	trainID, err := testhelpers.SeedTrain(s.testDB.DB, "IC-715", 9, 54, typeID)
	s.Require().NoError(err)

	departure := time.Now().Add(24 * time.Hour)
	s.journeyID, err = testhelpers.SeedJourney(s.testDB.DB, routeID, trainID,
		departure, departure.Add(5*time.Hour))
	s.Require().NoError(err)

	s.userID, err = testhelpers.SeedUser(s.testDB.DB, "rider@example.com", "not-a-real-hash")
	s.Require().NoError(err)
}

// ============================================================================
// CreateWithTickets Tests
// ============================================================================

func (s *OrderRepositoryTestSuite) TestCreateWithTickets_Success() {
	// Arrange
	order := &domain.Order{UserID: s.userID}
	tickets := []*domain.Ticket{
		{Cargo: 1, Seat: 1, JourneyID: s.journeyID},
		{Cargo: 1, Seat: 2, JourneyID: s.journeyID},
	}

	// Act
	created, err := s.repo.CreateWithTickets(s.ctx, order, tickets)

	// Assert
	s.NoError(err)
	s.Require().NotNil(created)
	s.NotZero(created.ID)
	s.False(created.CreatedAt.IsZero())
	s.Require().Len(created.Tickets, 2)
	for _, ticket := range created.Tickets {
		s.NotZero(ticket.ID)
		s.Equal(created.ID, ticket.OrderID)
	}
}

func (s *OrderRepositoryTestSuite) TestCreateWithTickets_DuplicateSeatRollsBack() {
	// Arrange - seat (2, 10) is already taken by an earlier order
	first := &domain.Order{UserID: s.userID}
	_, err := s.repo.CreateWithTickets(s.ctx, first, []*domain.Ticket{
		{Cargo: 2, Seat: 10, JourneyID: s.journeyID},
	})
	s.Require().NoError(err)

	// Act - second order holds one free seat and one taken seat
	second := &domain.Order{UserID: s.userID}
	_, err = s.repo.CreateWithTickets(s.ctx, second, []*domain.Ticket{
		{Cargo: 1, Seat: 1, JourneyID: s.journeyID},
		{Cargo: 2, Seat: 10, JourneyID: s.journeyID},
	})

	// Assert - conflict surfaced, nothing from the losing order persisted
	s.Require().Error(err)
	appErr, ok := err.(*apperrors.AppError)
	s.Require().True(ok)
	s.Equal(apperrors.ErrDuplicateSeat.Message, appErr.Message)

	var orderCount int
	s.Require().NoError(s.testDB.DB.Get(&orderCount,
		"SELECT COUNT(*) FROM orders WHERE user_id = $1", s.userID))
	s.Equal(1, orderCount)

	var ticketCount int
	s.Require().NoError(s.testDB.DB.Get(&ticketCount,
		"SELECT COUNT(*) FROM tickets WHERE journey_id = $1", s.journeyID))
	s.Equal(1, ticketCount)
}

// ============================================================================
// ListByUser Tests
// ============================================================================

func (s *OrderRepositoryTestSuite) TestListByUser_NewestFirstAndScoped() {
	// Arrange - two orders for the owner, one for somebody else
	otherID, err := testhelpers.SeedUser(s.testDB.DB, "other@example.com", "not-a-real-hash")
	s.Require().NoError(err)

	older := &domain.Order{UserID: s.userID}
	_, err = s.repo.CreateWithTickets(s.ctx, older, []*domain.Ticket{
		{Cargo: 1, Seat: 1, JourneyID: s.journeyID},
	})
	s.Require().NoError(err)

	newer := &domain.Order{UserID: s.userID}
	_, err = s.repo.CreateWithTickets(s.ctx, newer, []*domain.Ticket{
		{Cargo: 1, Seat: 2, JourneyID: s.journeyID},
		{Cargo: 1, Seat: 3, JourneyID: s.journeyID},
	})
	s.Require().NoError(err)

	foreign := &domain.Order{UserID: otherID}
	_, err = s.repo.CreateWithTickets(s.ctx, foreign, []*domain.Ticket{
		{Cargo: 9, Seat: 54, JourneyID: s.journeyID},
	})
	s.Require().NoError(err)

	// Act
	orders, total, err := s.repo.ListByUser(s.ctx, s.userID, domain.Page{Number: 1, Limit: 20})

	// Assert
	s.NoError(err)
	s.Equal(2, total)
	s.Require().Len(orders, 2)
	s.Equal(newer.ID, orders[0].ID)
	s.Equal(older.ID, orders[1].ID)
	s.Len(orders[0].Tickets, 2)
	s.Len(orders[1].Tickets, 1)
}

func (s *OrderRepositoryTestSuite) TestListByUser_Empty() {
	// Act
	orders, total, err := s.repo.ListByUser(s.ctx, s.userID, domain.Page{Number: 1, Limit: 20})

	// Assert
	s.NoError(err)
	s.Equal(0, total)
	s.Empty(orders)
}

// ============================================================================
// TakenSeats Tests
// ============================================================================

func (s *OrderRepositoryTestSuite) TestTakenSeats() {
	// Arrange
	order := &domain.Order{UserID: s.userID}
	_, err := s.repo.CreateWithTickets(s.ctx, order, []*domain.Ticket{
		{Cargo: 3, Seat: 7, JourneyID: s.journeyID},
		{Cargo: 1, Seat: 4, JourneyID: s.journeyID},
	})
	s.Require().NoError(err)

	// Act
	seats, err := s.repo.TakenSeats(s.ctx, s.journeyID)

	// Assert - ordered by (cargo, seat)
	s.NoError(err)
	s.Equal([]domain.SeatRef{{Cargo: 1, Seat: 4}, {Cargo: 3, Seat: 7}}, seats)
}

func (s *OrderRepositoryTestSuite) TestTakenSeats_NoTickets() {
	// Act
	seats, err := s.repo.TakenSeats(s.ctx, s.journeyID)

	// Assert
	s.NoError(err)
	s.Empty(seats)
}

// ============================================================================
// Test Suite Runner
// ============================================================================

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
