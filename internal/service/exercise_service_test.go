package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-workout-tracker/internal/cache"
	"go-workout-tracker/internal/model"
	"go-workout-tracker/internal/repository"
	"go-workout-tracker/pkg/apierror"
)

type memCache struct {
	data    map[string][]byte
	deletes int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := c.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	c.deletes++
	return nil
}

func requireStatus(t *testing.T, err error, status int) *apierror.APIError {
	t.Helper()

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.HTTPStatus)
	return apiErr
}

func TestExerciseService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request is stored with canonical muscle group", func(t *testing.T) {
		repo := new(repository.MockExerciseRepository)
		c := newMemCache()
		svc := NewExerciseService(repo, c, time.Minute)

		repo.On("Create", ctx, mock.MatchedBy(func(e model.Exercise) bool {
			return e.Name == "Bench Press" && e.MuscleGroup == model.MuscleGroupChest && e.ID != ""
		})).Return(nil).Once()

		resp, err := svc.Create(ctx, model.CreateExerciseRequest{Name: "  Bench Press ", MuscleGroup: "chest"})
		require.NoError(t, err)
		assert.Equal(t, model.MuscleGroupChest, resp.MuscleGroup)
		assert.Equal(t, 1, c.deletes)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing name and unknown muscle group", func(t *testing.T) {
		repo := new(repository.MockExerciseRepository)
		svc := NewExerciseService(repo, nil, 0)

		_, err := svc.Create(ctx, model.CreateExerciseRequest{Name: " ", MuscleGroup: "Chest"})
		requireStatus(t, err, http.StatusBadRequest)

		_, err = svc.Create(ctx, model.CreateExerciseRequest{Name: "Squat", MuscleGroup: "Wings"})
		requireStatus(t, err, http.StatusBadRequest)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestExerciseService_ListUsesCache(t *testing.T) {
	ctx := context.Background()
	repo := new(repository.MockExerciseRepository)
	c := newMemCache()
	svc := NewExerciseService(repo, c, time.Minute)

	repo.On("List", ctx).Return([]model.Exercise{
		{ID: "e1", Name: "Deadlift", MuscleGroup: model.MuscleGroupBack},
	}, nil).Once()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Deadlift", second[0].Name)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestExerciseService_UpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	repo := new(repository.MockExerciseRepository)
	svc := NewExerciseService(repo, newMemCache(), time.Minute)

	existing := model.Exercise{ID: "e1", Name: "Row", Description: "barbell", MuscleGroup: model.MuscleGroupBack}
	repo.On("GetByID", ctx, "e1").Return(existing, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(e model.Exercise) bool {
		return e.Name == "Row" && e.Description == "cable" && e.MuscleGroup == model.MuscleGroupBack
	})).Return(nil).Once()

	desc := "cable"
	resp, err := svc.Update(ctx, "e1", model.UpdateExerciseRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "cable", resp.Description)
	repo.AssertExpectations(t)
}

func TestExerciseService_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(repository.MockExerciseRepository)
	svc := NewExerciseService(repo, nil, 0)

	repo.On("GetByID", ctx, "missing").Return(model.Exercise{}, model.ErrNotFound)
	repo.On("Delete", ctx, "missing").Return(false, nil)

	_, err := svc.Get(ctx, "missing")
	apiErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Exercise: missing is not found.", apiErr.Message)

	_, err = svc.Delete(ctx, "missing")
	requireStatus(t, err, http.StatusNotFound)
}

func TestExerciseService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(repository.MockExerciseRepository)
	c := newMemCache()
	svc := NewExerciseService(repo, c, time.Minute)

	repo.On("Delete", ctx, "e1").Return(true, nil)

	resp, err := svc.Delete(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Exercise with id e1 has been deleted successfully.", resp.Message)
	assert.Equal(t, 1, c.deletes)
}
