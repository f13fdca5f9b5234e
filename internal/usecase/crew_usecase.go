package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// CrewUseCase serves crew members.
type CrewUseCase struct {
	crewRepo repository.CrewRepository
	logger   *zap.Logger
}

func NewCrewUseCase(crewRepo repository.CrewRepository, logger *zap.Logger) *CrewUseCase {
	return &CrewUseCase{
		crewRepo: crewRepo,
		logger:   logger,
	}
}

func (uc *CrewUseCase) Create(ctx context.Context, req dto.CrewRequest) (*dto.CrewResponse, error) {
	crew, err := uc.crewRepo.Create(ctx, &domain.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertCrew(crew)
	return &resp, nil
}

func (uc *CrewUseCase) GetByID(ctx context.Context, id int64) (*dto.CrewResponse, error) {
	crew, err := uc.crewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertCrew(crew)
	return &resp, nil
}

func (uc *CrewUseCase) List(ctx context.Context, page domain.Page) ([]dto.CrewResponse, int, error) {
	crews, total, err := uc.crewRepo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	return dto.ConvertCrewList(crews), total, nil
}

func (uc *CrewUseCase) Update(ctx context.Context, id int64, req dto.CrewRequest) (*dto.CrewResponse, error) {
	crew, err := uc.crewRepo.Update(ctx, &domain.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertCrew(crew)
	return &resp, nil
}

func (uc *CrewUseCase) Delete(ctx context.Context, id int64) error {
	return uc.crewRepo.Delete(ctx, id)
}
