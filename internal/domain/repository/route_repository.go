package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// RouteRepository persists routes. The storage layer enforces uniqueness of
// the (source, destination) pair.
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Route, int, error)
	Update(ctx context.Context, route *domain.Route) (*domain.Route, error)
	Delete(ctx context.Context, id int64) error
}
