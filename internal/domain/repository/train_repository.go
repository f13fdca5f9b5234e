package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// TrainTypeRepository persists train types (unique by name).
type TrainTypeRepository interface {
	Create(ctx context.Context, trainType *domain.TrainType) (*domain.TrainType, error)
	GetByID(ctx context.Context, id int64) (*domain.TrainType, error)
	List(ctx context.Context, page domain.Page) ([]*domain.TrainType, int, error)
}

// TrainRepository persists trains and their capacity configuration.
type TrainRepository interface {
	Create(ctx context.Context, train *domain.Train) (*domain.Train, error)
	GetByID(ctx context.Context, id int64) (*domain.Train, error)
	List(ctx context.Context, filter domain.TrainFilter, page domain.Page) ([]*domain.Train, int, error)
	Update(ctx context.Context, train *domain.Train) (*domain.Train, error)
	Delete(ctx context.Context, id int64) error
}
