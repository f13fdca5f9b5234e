package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// JourneyUseCase serves scheduled journeys and enforces their temporal
// invariants before anything reaches storage.
type JourneyUseCase struct {
	journeyRepo repository.JourneyRepository
	routeRepo   repository.RouteRepository
	trainRepo   repository.TrainRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewJourneyUseCase(
	journeyRepo repository.JourneyRepository,
	routeRepo repository.RouteRepository,
	trainRepo repository.TrainRepository,
	logger *zap.Logger,
) *JourneyUseCase {
	return &JourneyUseCase{
		journeyRepo: journeyRepo,
		routeRepo:   routeRepo,
		trainRepo:   trainRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// checkReferences rejects a journey pointing at a missing route or train.
func (uc *JourneyUseCase) checkReferences(ctx context.Context, req dto.JourneyRequest) error {
	if _, err := uc.routeRepo.GetByID(ctx, req.Route); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.ErrValidation.WithField("route", "route does not exist")
		}
		return err
	}
	if _, err := uc.trainRepo.GetByID(ctx, req.Train); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.ErrValidation.WithField("train", "train does not exist")
		}
		return err
	}
	return nil
}

func (uc *JourneyUseCase) Create(ctx context.Context, req dto.JourneyRequest) (*dto.JourneyResponse, error) {
	if err := domain.ValidateJourneySchedule(req.DepartureTime, req.ArrivalTime, uc.now(), true); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	journey, err := uc.journeyRepo.Create(ctx, &domain.Journey{
		RouteID:       req.Route,
		TrainID:       req.Train,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.Crew,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertJourney(journey)
	return &resp, nil
}

func (uc *JourneyUseCase) GetByID(ctx context.Context, id int64) (*dto.JourneyDetailResponse, error) {
	journey, err := uc.journeyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertJourneyDetail(journey)
	return &resp, nil
}

func (uc *JourneyUseCase) List(ctx context.Context, filter domain.JourneyFilter, page domain.Page) ([]dto.JourneyListResponse, int, error) {
	journeys, total, err := uc.journeyRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.JourneyListResponse, 0, len(journeys))
	for _, j := range journeys {
		items = append(items, dto.ConvertJourneyList(j))
	}
	return items, total, nil
}

// Update refuses to touch a journey whose persisted departure has already
// passed; the incoming times are only checked for relative ordering.
func (uc *JourneyUseCase) Update(ctx context.Context, id int64, req dto.JourneyRequest) (*dto.JourneyResponse, error) {
	persisted, err := uc.journeyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.ValidateJourneyMutable(persisted.DepartureTime, now); err != nil {
		return nil, err
	}
	if err := domain.ValidateJourneySchedule(req.DepartureTime, req.ArrivalTime, now, false); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	journey, err := uc.journeyRepo.Update(ctx, &domain.Journey{
		ID:            id,
		RouteID:       req.Route,
		TrainID:       req.Train,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.Crew,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertJourney(journey)
	return &resp, nil
}

func (uc *JourneyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.journeyRepo.Delete(ctx, id)
}
