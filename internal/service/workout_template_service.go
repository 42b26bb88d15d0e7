package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-workout-tracker/internal/model"
	"go-workout-tracker/pkg/apierror"
)

const entityWorkoutTemplate = "WorkoutTemplate"

type WorkoutTemplateService struct {
	templates WorkoutTemplateStore
	exercises ExerciseStore
	now       func() time.Time
}

func NewWorkoutTemplateService(templates WorkoutTemplateStore, exercises ExerciseStore) *WorkoutTemplateService {
	return &WorkoutTemplateService{templates: templates, exercises: exercises, now: time.Now}
}

func (s *WorkoutTemplateService) Create(ctx context.Context, userID string, req model.CreateWorkoutTemplateRequest) (model.WorkoutTemplateResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.WorkoutTemplateResponse{}, apierror.Invalid("name is required", "name")
	}

	exerciseIDs, err := s.resolveExercises(ctx, req.ExerciseIDs)
	if err != nil {
		return model.WorkoutTemplateResponse{}, err
	}

	now := s.now().UTC()
	template := model.WorkoutTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.templates.CreateWithExercises(ctx, template, exerciseIDs); err != nil {
		return model.WorkoutTemplateResponse{}, err
	}

	return template.Response(), nil
}

func (s *WorkoutTemplateService) Update(ctx context.Context, userID string, id string, req model.UpdateWorkoutTemplateRequest) (model.WorkoutTemplateResponse, error) {
	template, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.WorkoutTemplateResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return model.WorkoutTemplateResponse{}, apierror.Invalid("name cannot be empty", "name")
		}
		template.Name = name
	}

	var exerciseIDs *[]string
	if req.ExerciseIDs != nil {
		resolved, err := s.resolveExercises(ctx, *req.ExerciseIDs)
		if err != nil {
			return model.WorkoutTemplateResponse{}, err
		}
		exerciseIDs = &resolved
	}
	template.UpdatedAt = s.now().UTC()

	if err := s.templates.UpdateWithExercises(ctx, template, exerciseIDs); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.WorkoutTemplateResponse{}, apierror.NotFound(entityWorkoutTemplate, id)
		}
		return model.WorkoutTemplateResponse{}, err
	}

	return template.Response(), nil
}

func (s *WorkoutTemplateService) Get(ctx context.Context, userID string, id string) (model.WorkoutTemplateWithExercises, error) {
	template, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.WorkoutTemplateWithExercises{}, err
	}

	exercises, err := s.templates.Exercises(ctx, template.ID)
	if err != nil {
		return model.WorkoutTemplateWithExercises{}, err
	}
	return template.WithExercises(exercises), nil
}

func (s *WorkoutTemplateService) List(ctx context.Context, userID string) ([]model.WorkoutTemplateResponse, error) {
	templates, err := s.templates.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.WorkoutTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, t.Response())
	}
	return out, nil
}

func (s *WorkoutTemplateService) Delete(ctx context.Context, userID string, id string) (model.DeleteResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return model.DeleteResponse{}, err
	}

	deleted, err := s.templates.Delete(ctx, id)
	if err != nil {
		return model.DeleteResponse{}, err
	}
	if !deleted {
		return model.DeleteResponse{}, apierror.NotFound(entityWorkoutTemplate, id)
	}
	return model.NewDeleteResponse(entityWorkoutTemplate, id), nil
}

// owned hides templates of other users behind the same 404 as missing ones.
func (s *WorkoutTemplateService) owned(ctx context.Context, userID string, id string) (model.WorkoutTemplate, error) {
	template, err := s.templates.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) || (err == nil && template.UserID != userID) {
		return model.WorkoutTemplate{}, apierror.NotFound(entityWorkoutTemplate, id)
	}
	return template, err
}

// resolveExercises dedupes ids, keeping first occurrence order, and fails on the first unknown one.
func (s *WorkoutTemplateService) resolveExercises(ctx context.Context, ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return unique, nil
	}

	found, err := s.exercises.ListByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(found))
	for _, e := range found {
		known[e.ID] = struct{}{}
	}
	for _, id := range unique {
		if _, ok := known[id]; !ok {
			return nil, apierror.MissingReference(entityExercise, id)
		}
	}
	return unique, nil
}
