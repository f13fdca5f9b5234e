package domain

import "time"

// Order is a user-owned container of tickets, created atomically with them.
// Listed newest-first.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UserID    int64     `json:"user" db:"user_id"`

	Tickets []*Ticket `json:"-" db:"-"`
}

// Ticket reserves one seat in one cargo of a journey's train. The
// (journey, cargo, seat) triple is unique, enforced by the storage layer.
type Ticket struct {
	ID        int64 `json:"id" db:"id"`
	Cargo     int   `json:"cargo" db:"cargo"`
	Seat      int   `json:"seat" db:"seat"`
	JourneyID int64 `json:"journey" db:"journey_id"`
	OrderID   int64 `json:"order" db:"order_id"`

	Journey *Journey `json:"-" db:"-"`
}
