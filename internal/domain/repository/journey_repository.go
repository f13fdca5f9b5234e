package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// JourneyRepository persists journeys together with their crew assignment.
type JourneyRepository interface {
	Create(ctx context.Context, journey *domain.Journey) (*domain.Journey, error)

	// GetByID returns the journey with route, train and crew loaded.
	GetByID(ctx context.Context, id int64) (*domain.Journey, error)

	List(ctx context.Context, filter domain.JourneyFilter, page domain.Page) ([]*domain.Journey, int, error)
	Update(ctx context.Context, journey *domain.Journey) (*domain.Journey, error)
	Delete(ctx context.Context, id int64) error
}
