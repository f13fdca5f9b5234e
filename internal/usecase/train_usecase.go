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

const trainTypeCachePrefix = "train_types:"

// TrainTypeUseCase serves train type reference data, cached like stations.
type TrainTypeUseCase struct {
	trainTypeRepo repository.TrainTypeRepository
	cache         repository.CacheRepository
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewTrainTypeUseCase(
	trainTypeRepo repository.TrainTypeRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *TrainTypeUseCase {
	return &TrainTypeUseCase{
		trainTypeRepo: trainTypeRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

func (uc *TrainTypeUseCase) Create(ctx context.Context, req dto.TrainTypeCreateRequest) (*dto.TrainTypeResponse, error) {
	trainType, err := uc.trainTypeRepo.Create(ctx, &domain.TrainType{Name: req.Name})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.DeleteByPrefix(ctx, trainTypeCachePrefix); err != nil {
			uc.logger.Warn("Failed to invalidate train type cache", zap.Error(err))
		}
	}

	resp := dto.ConvertTrainType(trainType)
	return &resp, nil
}

type cachedTrainTypeList struct {
	Items []dto.TrainTypeResponse `json:"items"`
	Total int                     `json:"total"`
}

func (uc *TrainTypeUseCase) List(ctx context.Context, page domain.Page) ([]dto.TrainTypeResponse, int, error) {
	key := fmt.Sprintf("%slist:p%d:l%d", trainTypeCachePrefix, page.Number, page.Limit)

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
			var cached cachedTrainTypeList
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached.Items, cached.Total, nil
			}
		}
	}

	types, total, err := uc.trainTypeRepo.List(ctx, page)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.TrainTypeResponse, 0, len(types))
	for _, t := range types {
		items = append(items, dto.ConvertTrainType(t))
	}

	if uc.cache != nil {
		if data, err := json.Marshal(cachedTrainTypeList{Items: items, Total: total}); err == nil {
			if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache train type list", zap.Error(err))
			}
		}
	}

	return items, total, nil
}

// TrainUseCase serves the train fleet with its capacity configuration.
type TrainUseCase struct {
	trainRepo repository.TrainRepository
	logger    *zap.Logger
}

func NewTrainUseCase(trainRepo repository.TrainRepository, logger *zap.Logger) *TrainUseCase {
	return &TrainUseCase{
		trainRepo: trainRepo,
		logger:    logger,
	}
}

func (uc *TrainUseCase) Create(ctx context.Context, req dto.TrainRequest) (*dto.TrainResponse, error) {
	train, err := uc.trainRepo.Create(ctx, &domain.Train{
		Name:          req.Name,
		CargoNum:      req.CargoNum,
		PlacesInCargo: req.PlacesInCargo,
		TrainTypeID:   req.TrainType,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertTrain(train)
	return &resp, nil
}

func (uc *TrainUseCase) GetByID(ctx context.Context, id int64) (*dto.TrainDetailResponse, error) {
	train, err := uc.trainRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertTrainDetail(train)
	return &resp, nil
}

func (uc *TrainUseCase) List(ctx context.Context, filter domain.TrainFilter, page domain.Page) ([]dto.TrainResponse, int, error) {
	trains, total, err := uc.trainRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.TrainResponse, 0, len(trains))
	for _, t := range trains {
		items = append(items, dto.ConvertTrain(t))
	}
	return items, total, nil
}

func (uc *TrainUseCase) Update(ctx context.Context, id int64, req dto.TrainRequest) (*dto.TrainResponse, error) {
	train, err := uc.trainRepo.Update(ctx, &domain.Train{
		ID:            id,
		Name:          req.Name,
		CargoNum:      req.CargoNum,
		PlacesInCargo: req.PlacesInCargo,
		TrainTypeID:   req.TrainType,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertTrain(train)
	return &resp, nil
}

func (uc *TrainUseCase) Delete(ctx context.Context, id int64) error {
	return uc.trainRepo.Delete(ctx, id)
}
