package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// OrderRepository persists orders and their tickets.
type OrderRepository interface {
	// CreateWithTickets persists the order and all its tickets inside one
	// transaction: either everything commits or nothing does. A storage
	// unique-violation on (journey, cargo, seat) aborts the transaction
	// and surfaces as a duplicate-seat conflict.
	CreateWithTickets(ctx context.Context, order *domain.Order, tickets []*domain.Ticket) (*domain.Order, error)

	// ListByUser returns the user's orders newest-first, tickets loaded.
	ListByUser(ctx context.Context, userID int64, page domain.Page) ([]*domain.Order, int, error)

	// TakenSeats returns the (cargo, seat) pairs already persisted for the
	// journey, for the fast-path duplicate check.
	TakenSeats(ctx context.Context, journeyID int64) ([]domain.SeatRef, error)
}
