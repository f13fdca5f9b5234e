package postgres

import (
	"context"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type orderRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{db: db, logger: db.logger}
}

// CreateWithTickets persists the order and every ticket in one transaction.
// The unique index on (journey_id, cargo, seat) is what actually prevents
// double-booking when two requests race past the usecase's fast-path check:
// the loser's INSERT fails and the whole transaction rolls back.
func (r *orderRepository) CreateWithTickets(ctx context.Context, order *domain.Order, tickets []*domain.Ticket) (*domain.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id) VALUES ($1)
		RETURNING id, created_at
	`, order.UserID).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create order", zap.Int64("user_id", order.UserID), zap.Error(err))
		return nil, translateError(err)
	}

	for _, ticket := range tickets {
		ticket.OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO tickets (cargo, seat, journey_id, order_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, ticket.Cargo, ticket.Seat, ticket.JourneyID, ticket.OrderID,
		).Scan(&ticket.ID)
		if err != nil {
			r.logger.Warn("Ticket insert failed, rolling back order",
				zap.Int64("journey_id", ticket.JourneyID),
				zap.Int("cargo", ticket.Cargo),
				zap.Int("seat", ticket.Seat),
				zap.Error(err))
			return nil, translateError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}

	order.Tickets = tickets
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, page domain.Page) ([]*domain.Order, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, translateError(err)
	}

	orders := make([]*domain.Order, 0)
	err = r.db.SelectContext(ctx, &orders, `
		SELECT id, created_at, user_id
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, page.Limit, page.Offset())
	if err != nil {
		r.logger.Error("Failed to list orders", zap.Int64("user_id", userID), zap.Error(err))
		return nil, 0, translateError(err)
	}

	if err := r.loadTickets(ctx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// loadTickets attaches tickets to the orders in one batch query, ordered by
// (cargo, seat) within each order.
func (r *orderRepository) loadTickets(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Order, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
		o.Tickets = []*domain.Ticket{}
	}

	var tickets []*domain.Ticket
	err := r.db.SelectContext(ctx, &tickets, `
		SELECT id, cargo, seat, journey_id, order_id
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY cargo, seat
	`, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load order tickets", zap.Error(err))
		return translateError(err)
	}

	for _, t := range tickets {
		if o, ok := byID[t.OrderID]; ok {
			o.Tickets = append(o.Tickets, t)
		}
	}
	return nil
}

func (r *orderRepository) TakenSeats(ctx context.Context, journeyID int64) ([]domain.SeatRef, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cargo, seat FROM tickets WHERE journey_id = $1 ORDER BY cargo, seat
	`, journeyID)
	if err != nil {
		r.logger.Error("Failed to load taken seats", zap.Int64("journey_id", journeyID), zap.Error(err))
		return nil, translateError(err)
	}
	defer rows.Close()

	var seats []domain.SeatRef
	for rows.Next() {
		var ref domain.SeatRef
		if err := rows.Scan(&ref.Cargo, &ref.Seat); err != nil {
			return nil, translateError(err)
		}
		seats = append(seats, ref)
	}
	return seats, translateError(rows.Err())
}
