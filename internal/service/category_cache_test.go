package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"trivia-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const categoryCacheTTL = 10 * time.Minute

func TestCategoryCache_Hit(t *testing.T) {
	cacheClient := new(MockCache)
	cacheClient.On("Get", mock.Anything, mock.Anything).Return(`{"1":"Science","2":"Art"}`, nil)
	categoryRepo := new(MockCategoryRepository)
	svc := NewCategoryCacheService(categoryRepo, cacheClient, categoryCacheTTL)

	categories, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Science", 2: "Art"}, categories)
	categoryRepo.AssertNotCalled(t, "GetAllCategories", mock.Anything)
}

func TestCategoryCache_MissPopulates(t *testing.T) {
	cacheClient := new(MockCache)
	cacheClient.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	cacheClient.On("Set", mock.Anything, mock.Anything, `{"1":"Science"}`, categoryCacheTTL).Return(nil)
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAllCategories", mock.Anything).Return([]domain.Category{{ID: 1, Name: "Science"}}, nil)
	svc := NewCategoryCacheService(categoryRepo, cacheClient, categoryCacheTTL)

	categories, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Science"}, categories)
	cacheClient.AssertExpectations(t)
}

func TestCategoryCache_ReadFailureFallsBack(t *testing.T) {
	cacheClient := new(MockCache)
	cacheClient.On("Get", mock.Anything, mock.Anything).Return("", fmt.Errorf("connection refused"))
	cacheClient.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("connection refused"))
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAllCategories", mock.Anything).Return([]domain.Category{{ID: 1, Name: "Science"}}, nil)
	svc := NewCategoryCacheService(categoryRepo, cacheClient, categoryCacheTTL)

	categories, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Science"}, categories)
}

func TestCategoryCache_RepositoryErrorPropagates(t *testing.T) {
	cacheClient := new(MockCache)
	cacheClient.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAllCategories", mock.Anything).Return(nil, fmt.Errorf("connection reset"))
	svc := NewCategoryCacheService(categoryRepo, cacheClient, categoryCacheTTL)

	_, err := svc.Categories(context.Background())

	assert.Error(t, err)
}

func TestCategoryCache_NilCacheGoesStraightToRepository(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAllCategories", mock.Anything).Return([]domain.Category{{ID: 1, Name: "Science"}}, nil)
	svc := NewCategoryCacheService(categoryRepo, nil, categoryCacheTTL)

	categories, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Science"}, categories)
}
