package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// StationRepository persists stations. The storage layer enforces name
// uniqueness.
type StationRepository interface {
	Create(ctx context.Context, station *domain.Station) (*domain.Station, error)
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Station, int, error)
}
