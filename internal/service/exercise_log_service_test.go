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

func TestExerciseLogService_CreateAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	logs := new(repository.MockExerciseLogRepository)
	sessions := new(repository.MockWorkoutSessionRepository)
	exercises := new(repository.MockExerciseRepository)
	svc := NewExerciseLogService(logs, sessions, exercises)

	sessions.On("GetByID", ctx, "s1").Return(model.WorkoutSession{ID: "s1", UserID: "u1"}, nil)
	exercises.On("GetByID", ctx, "e1").Return(model.Exercise{ID: "e1"}, nil)
	logs.On("CountByWorkoutSession", ctx, "s1").Return(2, nil)
	logs.On("Create", ctx, mock.MatchedBy(func(l model.ExerciseLog) bool {
		return l.Order == 3 && l.WorkoutSessionID == "s1" && l.ExerciseID == "e1"
	})).Return(nil).Once()

	resp, err := svc.Create(ctx, "u1", model.CreateExerciseLogRequest{ExerciseID: "e1", WorkoutSessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Order)
	logs.AssertExpectations(t)
}

func TestExerciseLogService_CreateRejectsBadReferences(t *testing.T) {
	ctx := context.Background()
	logs := new(repository.MockExerciseLogRepository)
	sessions := new(repository.MockWorkoutSessionRepository)
	exercises := new(repository.MockExerciseRepository)
	svc := NewExerciseLogService(logs, sessions, exercises)

	sessions.On("GetByID", ctx, "missing").Return(model.WorkoutSession{}, model.ErrNotFound)
	sessions.On("GetByID", ctx, "foreign").Return(model.WorkoutSession{ID: "foreign", UserID: "u2"}, nil)
	sessions.On("GetByID", ctx, "s1").Return(model.WorkoutSession{ID: "s1", UserID: "u1"}, nil)
	exercises.On("GetByID", ctx, "nope").Return(model.Exercise{}, model.ErrNotFound)

	_, err := svc.Create(ctx, "u1", model.CreateExerciseLogRequest{ExerciseID: "e1", WorkoutSessionID: "missing"})
	apiErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "WorkoutSession: missing is not found.", apiErr.Message)

	_, err = svc.Create(ctx, "u1", model.CreateExerciseLogRequest{ExerciseID: "e1", WorkoutSessionID: "foreign"})
	requireStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(ctx, "u1", model.CreateExerciseLogRequest{ExerciseID: "nope", WorkoutSessionID: "s1"})
	apiErr = requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "Exercise: nope is not found.", apiErr.Message)

	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExerciseLogService_UpdateOrder(t *testing.T) {
	ctx := context.Background()
	logs := new(repository.MockExerciseLogRepository)
	sessions := new(repository.MockWorkoutSessionRepository)
	svc := NewExerciseLogService(logs, sessions, new(repository.MockExerciseRepository))

	logs.On("GetByID", ctx, "l1").Return(model.ExerciseLog{ID: "l1", WorkoutSessionID: "s1", Order: 1}, nil)
	sessions.On("GetByID", ctx, "s1").Return(model.WorkoutSession{ID: "s1", UserID: "u1"}, nil)
	logs.On("Update", ctx, mock.MatchedBy(func(l model.ExerciseLog) bool { return l.Order == 4 })).Return(nil).Once()

	zero := 0
	_, err := svc.Update(ctx, "u1", "l1", model.UpdateExerciseLogRequest{Order: &zero})
	requireStatus(t, err, http.StatusBadRequest)

	four := 4
	resp, err := svc.Update(ctx, "u1", "l1", model.UpdateExerciseLogRequest{Order: &four})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Order)

	_, err = svc.Get(ctx, "u2", "l1")
	requireStatus(t, err, http.StatusNotFound)
	logs.AssertExpectations(t)
}

func TestExerciseLogService_ListBySession(t *testing.T) {
	ctx := context.Background()
	logs := new(repository.MockExerciseLogRepository)
	sessions := new(repository.MockWorkoutSessionRepository)
	svc := NewExerciseLogService(logs, sessions, new(repository.MockExerciseRepository))

	sessions.On("GetByID", ctx, "s1").Return(model.WorkoutSession{ID: "s1", UserID: "u1"}, nil)
	logs.On("ListByWorkoutSession", ctx, "s1").Return([]model.ExerciseLog{
		{ID: "l1", Order: 1}, {ID: "l2", Order: 2},
	}, nil)

	out, err := svc.ListBySession(ctx, "u1", "s1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "l2", out[1].ID)
}
