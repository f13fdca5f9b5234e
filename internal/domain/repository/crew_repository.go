package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// CrewRepository persists crew members.
type CrewRepository interface {
	Create(ctx context.Context, crew *domain.Crew) (*domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Crew, int, error)
	Update(ctx context.Context, crew *domain.Crew) (*domain.Crew, error)
	Delete(ctx context.Context, id int64) error
}
