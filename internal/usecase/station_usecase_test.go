package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/usecase"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

func stationDeps() (*MockStationRepository, *MockCacheRepository, *usecase.StationUseCase) {
	mockRepo := &MockStationRepository{}
	mockCache := &MockCacheRepository{}
	uc := usecase.NewStationUseCase(mockRepo, mockCache, 5*time.Minute, zap.NewNop())
	return mockRepo, mockCache, uc
}

func TestStationUseCase_List(t *testing.T) {
	ctx := context.Background()
	page := domain.Page{Number: 1, Limit: 20}

	t.Run("cache miss falls through to storage and caches the page", func(t *testing.T) {
		mockRepo, mockCache, uc := stationDeps()

		mockCache.On("Get", ctx, "stations:list:p1:l20").Return(nil, nil)
		mockRepo.On("List", ctx, page).Return([]*domain.Station{
			{ID: 1, Name: "Kyiv", Latitude: 50.44, Longitude: 30.52},
		}, 1, nil)
		mockCache.On("Set", ctx, "stations:list:p1:l20", mock.Anything, 5*time.Minute).Return(nil)

		stations, total, err := uc.List(ctx, page)

		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Kyiv", stations[0].Name)
		mockCache.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		mockRepo, mockCache, uc := stationDeps()

		cached, _ := json.Marshal(map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": 2, "name": "Lviv", "latitude": 49.84, "longitude": 24.03},
			},
			"total": 7,
		})
		mockCache.On("Get", ctx, "stations:list:p1:l20").Return(cached, nil)

		stations, total, err := uc.List(ctx, page)

		assert.NoError(t, err)
		assert.Equal(t, 7, total)
		assert.Equal(t, "Lviv", stations[0].Name)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("cache read failure degrades to storage", func(t *testing.T) {
		mockRepo, mockCache, uc := stationDeps()

		mockCache.On("Get", ctx, "stations:list:p1:l20").Return(nil, assert.AnError)
		mockRepo.On("List", ctx, page).Return([]*domain.Station{}, 0, nil)
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		stations, total, err := uc.List(ctx, page)

		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, stations)
	})
}

func TestStationUseCase_Create_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	mockRepo, mockCache, uc := stationDeps()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Station) bool {
		return s.Name == "Odesa"
	})).Return(&domain.Station{ID: 3, Name: "Odesa", Latitude: 46.48, Longitude: 30.72}, nil)
	mockCache.On("DeleteByPrefix", ctx, "stations:").Return(nil)

	station, err := uc.Create(ctx, dto.StationCreateRequest{
		Name:      "Odesa",
		Latitude:  46.48,
		Longitude: 30.72,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), station.ID)
	mockCache.AssertExpectations(t)
}
