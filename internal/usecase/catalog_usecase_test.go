package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/otaviobrantes/lumen/internal/catalog"
	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoadCatalog_FromDatabase(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	uc := NewCatalogUseCase(mockRepo, logger.New())

	videos := []*entity.Video{
		{ID: "v1", Title: "A Arca de Noé"},
	}
	mockRepo.On("List", mock.Anything).Return(videos, nil)

	result := uc.LoadCatalog(context.Background())

	assert.Equal(t, videos, result)
	mockRepo.AssertExpectations(t)
}

func TestLoadCatalog_EmptyFallsBack(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	uc := NewCatalogUseCase(mockRepo, logger.New())

	mockRepo.On("List", mock.Anything).Return([]*entity.Video{}, nil)

	result := uc.LoadCatalog(context.Background())

	assert.Equal(t, catalog.FallbackVideos, result)
	assert.NotEmpty(t, result)
}

func TestLoadCatalog_ErrorFallsBack(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	uc := NewCatalogUseCase(mockRepo, logger.New())

	mockRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	result := uc.LoadCatalog(context.Background())

	assert.Equal(t, catalog.FallbackVideos, result)
}

func TestDailyPick(t *testing.T) {
	uc := NewCatalogUseCase(nil, logger.New())

	a := &entity.Video{ID: "a"}
	b := &entity.Video{ID: "b"}
	c := &entity.Video{ID: "c"}

	assert.Nil(t, uc.DailyPick(nil))
	assert.Equal(t, a, uc.DailyPick([]*entity.Video{a}))
	assert.Equal(t, a, uc.DailyPick([]*entity.Video{a, b}))
	assert.Equal(t, c, uc.DailyPick([]*entity.Video{a, b, c}))
}

func TestGetPlayback_PremiumLockedForInactive(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	uc := NewCatalogUseCase(mockRepo, logger.New())

	video := &entity.Video{ID: "v1", IsPremium: true}
	mockRepo.On("GetByID", mock.Anything, "v1").Return(video, nil)

	session := &entity.Session{ID: "u1", Role: entity.RoleUser, Subscription: entity.SubscriptionInactive}
	result, locked, err := uc.GetPlayback(context.Background(), "v1", session)

	assert.NoError(t, err)
	assert.Equal(t, video, result)
	assert.True(t, locked)
}

func TestGetPlayback_AdminBypassesPaywall(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	uc := NewCatalogUseCase(mockRepo, logger.New())

	video := &entity.Video{ID: "v1", IsPremium: true}
	mockRepo.On("GetByID", mock.Anything, "v1").Return(video, nil)

	session := &entity.Session{ID: "u1", Role: entity.RoleAdmin, Subscription: entity.SubscriptionInactive}
	_, locked, err := uc.GetPlayback(context.Background(), "v1", session)

	assert.NoError(t, err)
	assert.False(t, locked)
}

func TestGetPlayback_FallbackID(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	uc := NewCatalogUseCase(mockRepo, logger.New())

	fallbackID := catalog.FallbackVideos[0].ID
	mockRepo.On("GetByID", mock.Anything, fallbackID).Return(nil, errs.ErrNotFound)

	session := &entity.Session{ID: "u1", Role: entity.RoleUser, Subscription: entity.SubscriptionActive}
	result, _, err := uc.GetPlayback(context.Background(), fallbackID, session)

	assert.NoError(t, err)
	assert.Equal(t, catalog.FallbackVideos[0], result)
}

func TestGetPlayback_NotFound(t *testing.T) {
	mockRepo := new(MockVideoRepository)
	uc := NewCatalogUseCase(mockRepo, logger.New())

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrNotFound)

	_, _, err := uc.GetPlayback(context.Background(), "missing", &entity.Session{})

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListActivities(t *testing.T) {
	uc := NewCatalogUseCase(nil, logger.New())

	activities := uc.ListActivities()

	assert.Equal(t, catalog.Activities, activities)
	assert.NotEmpty(t, activities)
}
