package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-workout-tracker/internal/model"
	"go-workout-tracker/internal/repository"
)

func newSetLogFixture(ctx context.Context) (*SetLogService, *repository.MockSetLogRepository) {
	sets := new(repository.MockSetLogRepository)
	logs := new(repository.MockExerciseLogRepository)
	sessions := new(repository.MockWorkoutSessionRepository)

	logs.On("GetByID", ctx, "l1").Return(model.ExerciseLog{ID: "l1", WorkoutSessionID: "s1"}, nil)
	logs.On("GetByID", ctx, "missing").Return(model.ExerciseLog{}, model.ErrNotFound)
	sessions.On("GetByID", ctx, "s1").Return(model.WorkoutSession{ID: "s1", UserID: "u1"}, nil)

	return NewSetLogService(sets, logs, sessions), sets
}

func TestSetLogService_Create(t *testing.T) {
	ctx := context.Background()
	svc, sets := newSetLogFixture(ctx)

	sets.On("CountByExerciseLog", ctx, "l1").Return(0, nil)
	sets.On("Create", ctx, mock.MatchedBy(func(s model.SetLog) bool {
		return s.Order == 1 && s.Reps == 8 && s.Weight == 100 && s.RestTime == 120
	})).Return(nil).Once()

	resp, err := svc.Create(ctx, "u1", model.CreateSetLogRequest{ExerciseLogID: "l1", Reps: 8, Weight: 100, RestTime: 120})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Order)
	sets.AssertExpectations(t)
}

func TestSetLogService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, sets := newSetLogFixture(ctx)

	_, err := svc.Create(ctx, "u1", model.CreateSetLogRequest{ExerciseLogID: "missing", Reps: 1})
	apiErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "ExerciseLog: missing is not found.", apiErr.Message)

	_, err = svc.Create(ctx, "u2", model.CreateSetLogRequest{ExerciseLogID: "l1", Reps: 1})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(ctx, "u1", model.CreateSetLogRequest{ExerciseLogID: "l1", Reps: -1})
	requireStatus(t, err, http.StatusBadRequest)

	sets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetLogService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	svc, sets := newSetLogFixture(ctx)

	sets.On("GetByID", ctx, "set1").Return(model.SetLog{ID: "set1", ExerciseLogID: "l1", Order: 1, Reps: 5, Weight: 80, RestTime: 60}, nil)
	sets.On("Update", ctx, mock.MatchedBy(func(s model.SetLog) bool {
		return s.Reps == 5 && s.Weight == 85 && s.RestTime == 60
	})).Return(nil).Once()

	weight := 85
	resp, err := svc.Update(ctx, "u1", "set1", model.UpdateSetLogRequest{Weight: &weight})
	require.NoError(t, err)
	assert.Equal(t, 85, resp.Weight)

	_, err = svc.Update(ctx, "u2", "set1", model.UpdateSetLogRequest{Weight: &weight})
	requireStatus(t, err, http.StatusNotFound)
	sets.AssertNumberOfCalls(t, "Update", 1)
}

func TestSetLogService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, sets := newSetLogFixture(ctx)

	sets.On("GetByID", ctx, "set1").Return(model.SetLog{ID: "set1", ExerciseLogID: "l1"}, nil)
	sets.On("GetByID", ctx, "gone").Return(model.SetLog{}, model.ErrNotFound)
	sets.On("Delete", ctx, "set1").Return(true, nil)

	resp, err := svc.Delete(ctx, "u1", "set1")
	require.NoError(t, err)
	assert.Equal(t, "SetLog with id set1 has been deleted successfully.", resp.Message)

	_, err = svc.Delete(ctx, "u1", "gone")
	requireStatus(t, err, http.StatusNotFound)
}
