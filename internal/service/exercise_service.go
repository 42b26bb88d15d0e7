package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-workout-tracker/internal/cache"
	"go-workout-tracker/internal/model"
	"go-workout-tracker/pkg/apierror"
)

const (
	entityExercise       = "Exercise"
	exerciseCatalogKey   = "exercises:catalog"
	defaultCatalogTTL    = 10 * time.Minute
	maxExerciseNameRunes = 200
)

// ExerciseService manages the shared exercise catalog. The list view is cached and
// dropped on every write.
type ExerciseService struct {
	exercises ExerciseStore
	cache     cache.Cache
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewExerciseService(exercises ExerciseStore, c cache.Cache, cacheTTL time.Duration) *ExerciseService {
	if c == nil {
		c = cache.Nop{}
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCatalogTTL
	}
	return &ExerciseService{exercises: exercises, cache: c, cacheTTL: cacheTTL, now: time.Now}
}

func (s *ExerciseService) Create(ctx context.Context, req model.CreateExerciseRequest) (model.ExerciseResponse, error) {
	name, err := validateExerciseName(req.Name)
	if err != nil {
		return model.ExerciseResponse{}, err
	}
	group, ok := model.ParseMuscleGroup(req.MuscleGroup)
	if !ok {
		return model.ExerciseResponse{}, apierror.Invalid("invalid muscle group", "muscle_group")
	}

	now := s.now().UTC()
	exercise := model.Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		MuscleGroup: group,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		return model.ExerciseResponse{}, err
	}

	s.invalidate(ctx)
	return exercise.Response(), nil
}

func (s *ExerciseService) Update(ctx context.Context, id string, req model.UpdateExerciseRequest) (model.ExerciseResponse, error) {
	exercise, err := s.get(ctx, id)
	if err != nil {
		return model.ExerciseResponse{}, err
	}

	if req.Name != nil {
		name, err := validateExerciseName(*req.Name)
		if err != nil {
			return model.ExerciseResponse{}, err
		}
		exercise.Name = name
	}
	if req.Description != nil {
		exercise.Description = strings.TrimSpace(*req.Description)
	}
	if req.MuscleGroup != nil {
		group, ok := model.ParseMuscleGroup(*req.MuscleGroup)
		if !ok {
			return model.ExerciseResponse{}, apierror.Invalid("invalid muscle group", "muscle_group")
		}
		exercise.MuscleGroup = group
	}
	exercise.UpdatedAt = s.now().UTC()

	if err := s.exercises.Update(ctx, exercise); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ExerciseResponse{}, apierror.NotFound(entityExercise, id)
		}
		return model.ExerciseResponse{}, err
	}

	s.invalidate(ctx)
	return exercise.Response(), nil
}

func (s *ExerciseService) Get(ctx context.Context, id string) (model.ExerciseResponse, error) {
	exercise, err := s.get(ctx, id)
	if err != nil {
		return model.ExerciseResponse{}, err
	}
	return exercise.Response(), nil
}

func (s *ExerciseService) List(ctx context.Context) ([]model.ExerciseLight, error) {
	if raw, err := s.cache.Get(ctx, exerciseCatalogKey); err == nil {
		var cached []model.ExerciseLight
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		slog.Warn("discarding unreadable exercise catalog cache entry")
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("exercise catalog cache read failed", "error", err)
	}

	exercises, err := s.exercises.List(ctx)
	if err != nil {
		return nil, err
	}
	lights := model.ExerciseLights(exercises)

	if raw, err := json.Marshal(lights); err == nil {
		if err := s.cache.Set(ctx, exerciseCatalogKey, raw, s.cacheTTL); err != nil {
			slog.Warn("exercise catalog cache write failed", "error", err)
		}
	}
	return lights, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id string) (model.DeleteResponse, error) {
	deleted, err := s.exercises.Delete(ctx, id)
	if err != nil {
		return model.DeleteResponse{}, err
	}
	if !deleted {
		return model.DeleteResponse{}, apierror.NotFound(entityExercise, id)
	}

	s.invalidate(ctx)
	return model.NewDeleteResponse(entityExercise, id), nil
}

func (s *ExerciseService) get(ctx context.Context, id string) (model.Exercise, error) {
	exercise, err := s.exercises.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Exercise{}, apierror.NotFound(entityExercise, id)
	}
	return exercise, err
}

func (s *ExerciseService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, exerciseCatalogKey); err != nil {
		slog.Warn("exercise catalog cache invalidation failed", "error", err)
	}
}

func validateExerciseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", apierror.Invalid("name is required", "name")
	}
	if len([]rune(name)) > maxExerciseNameRunes {
		return "", apierror.Invalid("name is too long", "name")
	}
	return name, nil
}
