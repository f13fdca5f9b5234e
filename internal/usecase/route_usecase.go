package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// RouteUseCase serves station-to-station routes.
type RouteUseCase struct {
	routeRepo   repository.RouteRepository
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	stationRepo repository.StationRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:   routeRepo,
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// checkEndpoints rejects a route whose stations do not exist, keying the
// error to the offending field.
func (uc *RouteUseCase) checkEndpoints(ctx context.Context, req dto.RouteRequest) error {
	if _, err := uc.stationRepo.GetByID(ctx, req.Source); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.ErrValidation.WithField("source", "source station does not exist")
		}
		return err
	}
	if _, err := uc.stationRepo.GetByID(ctx, req.Destination); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.ErrValidation.WithField("destination", "destination station does not exist")
		}
		return err
	}
	return nil
}

func (uc *RouteUseCase) Create(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if err := uc.checkEndpoints(ctx, req); err != nil {
		return nil, err
	}

	route, err := uc.routeRepo.Create(ctx, &domain.Route{
		SourceID:      req.Source,
		DestinationID: req.Destination,
		Distance:      req.Distance,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertRoute(route)
	return &resp, nil
}

func (uc *RouteUseCase) GetByID(ctx context.Context, id int64) (*dto.RouteDetailResponse, error) {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertRouteDetail(route)
	return &resp, nil
}

func (uc *RouteUseCase) List(ctx context.Context, page domain.Page) ([]dto.RouteDetailResponse, int, error) {
	routes, total, err := uc.routeRepo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.RouteDetailResponse, 0, len(routes))
	for _, r := range routes {
		items = append(items, dto.ConvertRouteDetail(r))
	}
	return items, total, nil
}

func (uc *RouteUseCase) Update(ctx context.Context, id int64, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if err := uc.checkEndpoints(ctx, req); err != nil {
		return nil, err
	}

	route, err := uc.routeRepo.Update(ctx, &domain.Route{
		ID:            id,
		SourceID:      req.Source,
		DestinationID: req.Destination,
		Distance:      req.Distance,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertRoute(route)
	return &resp, nil
}

func (uc *RouteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.routeRepo.Delete(ctx, id)
}
