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

func TestWorkoutTemplateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("dedupes exercises and links them", func(t *testing.T) {
		templates := new(repository.MockWorkoutTemplateRepository)
		exercises := new(repository.MockExerciseRepository)
		svc := NewWorkoutTemplateService(templates, exercises)

		exercises.On("ListByIDs", ctx, []string{"e1", "e2"}).
			Return([]model.Exercise{{ID: "e2"}, {ID: "e1"}}, nil)
		templates.On("CreateWithExercises", ctx, mock.MatchedBy(func(tpl model.WorkoutTemplate) bool {
			return tpl.Name == "Push day" && tpl.UserID == "u1"
		}), []string{"e1", "e2"}).Return(nil).Once()

		resp, err := svc.Create(ctx, "u1", model.CreateWorkoutTemplateRequest{
			Name:        "Push day",
			ExerciseIDs: []string{"e1", "e2", "e1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Push day", resp.Name)
		templates.AssertExpectations(t)
	})

	t.Run("unknown exercise is a bad request", func(t *testing.T) {
		templates := new(repository.MockWorkoutTemplateRepository)
		exercises := new(repository.MockExerciseRepository)
		svc := NewWorkoutTemplateService(templates, exercises)

		exercises.On("ListByIDs", ctx, []string{"e1", "nope"}).Return([]model.Exercise{{ID: "e1"}}, nil)

		_, err := svc.Create(ctx, "u1", model.CreateWorkoutTemplateRequest{Name: "Legs", ExerciseIDs: []string{"e1", "nope"}})
		apiErr := requireStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, "Exercise: nope is not found.", apiErr.Message)
		templates.AssertNotCalled(t, "CreateWithExercises", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("name is required", func(t *testing.T) {
		svc := NewWorkoutTemplateService(new(repository.MockWorkoutTemplateRepository), new(repository.MockExerciseRepository))
		_, err := svc.Create(ctx, "u1", model.CreateWorkoutTemplateRequest{})
		requireStatus(t, err, http.StatusBadRequest)
	})
}

func TestWorkoutTemplateService_OwnershipHidesOthers(t *testing.T) {
	ctx := context.Background()
	templates := new(repository.MockWorkoutTemplateRepository)
	svc := NewWorkoutTemplateService(templates, new(repository.MockExerciseRepository))

	templates.On("GetByID", ctx, "t1").Return(model.WorkoutTemplate{ID: "t1", UserID: "someone-else"}, nil)

	_, err := svc.Get(ctx, "u1", "t1")
	apiErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "WorkoutTemplate: t1 is not found.", apiErr.Message)

	_, err = svc.Delete(ctx, "u1", "t1")
	requireStatus(t, err, http.StatusNotFound)
	templates.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestWorkoutTemplateService_GetWithExercises(t *testing.T) {
	ctx := context.Background()
	templates := new(repository.MockWorkoutTemplateRepository)
	svc := NewWorkoutTemplateService(templates, new(repository.MockExerciseRepository))

	templates.On("GetByID", ctx, "t1").Return(model.WorkoutTemplate{ID: "t1", Name: "Pull", UserID: "u1"}, nil)
	templates.On("Exercises", ctx, "t1").Return([]model.Exercise{
		{ID: "e1", Name: "Pull-up", MuscleGroup: model.MuscleGroupBack},
	}, nil)

	resp, err := svc.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	require.Len(t, resp.Exercises, 1)
	assert.Equal(t, "Pull-up", resp.Exercises[0].Name)
}

func TestWorkoutTemplateService_UpdateKeepsExercisesWhenOmitted(t *testing.T) {
	ctx := context.Background()
	templates := new(repository.MockWorkoutTemplateRepository)
	exercises := new(repository.MockExerciseRepository)
	svc := NewWorkoutTemplateService(templates, exercises)

	templates.On("GetByID", ctx, "t1").Return(model.WorkoutTemplate{ID: "t1", Name: "Old", UserID: "u1"}, nil)
	templates.On("UpdateWithExercises", ctx, mock.MatchedBy(func(tpl model.WorkoutTemplate) bool {
		return tpl.Name == "New"
	}), (*[]string)(nil)).Return(nil).Once()

	name := "New"
	resp, err := svc.Update(ctx, "u1", "t1", model.UpdateWorkoutTemplateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	exercises.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
	templates.AssertExpectations(t)
}
