package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

const stationCachePrefix = "stations:"

// StationUseCase serves station reference data. Listings are cached with a
// short TTL and invalidated on every write.
type StationUseCase struct {
	stationRepo repository.StationRepository
	cache       repository.CacheRepository
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (uc *StationUseCase) Create(ctx context.Context, req dto.StationCreateRequest) (*dto.StationResponse, error) {
	station, err := uc.stationRepo.Create(ctx, &domain.Station{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)

	resp := dto.ConvertStation(station)
	return &resp, nil
}

func (uc *StationUseCase) GetByID(ctx context.Context, id int64) (*dto.StationResponse, error) {
	station, err := uc.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertStation(station)
	return &resp, nil
}

// cachedStationList is the cache payload for one listing page.
type cachedStationList struct {
	Items []dto.StationResponse `json:"items"`
	Total int                   `json:"total"`
}

func (uc *StationUseCase) List(ctx context.Context, page domain.Page) ([]dto.StationResponse, int, error) {
	key := fmt.Sprintf("%slist:p%d:l%d", stationCachePrefix, page.Number, page.Limit)

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
			var cached cachedStationList
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached.Items, cached.Total, nil
			}
		}
	}

	stations, total, err := uc.stationRepo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.StationResponse, 0, len(stations))
	for _, s := range stations {
		items = append(items, dto.ConvertStation(s))
	}

	if uc.cache != nil {
		if data, err := json.Marshal(cachedStationList{Items: items, Total: total}); err == nil {
			if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache station list", zap.Error(err))
			}
		}
	}

	return items, total, nil
}

func (uc *StationUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteByPrefix(ctx, stationCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate station cache", zap.Error(err))
	}
}
