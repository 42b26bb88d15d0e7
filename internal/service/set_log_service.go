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

const entitySetLog = "SetLog"

type SetLogService struct {
	sets     SetLogStore
	logs     ExerciseLogStore
	sessions WorkoutSessionStore
	now      func() time.Time
}

func NewSetLogService(sets SetLogStore, logs ExerciseLogStore, sessions WorkoutSessionStore) *SetLogService {
	return &SetLogService{sets: sets, logs: logs, sessions: sessions, now: time.Now}
}

func (s *SetLogService) Create(ctx context.Context, userID string, req model.CreateSetLogRequest) (model.SetLogResponse, error) {
	exerciseLogID := strings.TrimSpace(req.ExerciseLogID)
	if err := s.requireExerciseLog(ctx, userID, exerciseLogID); err != nil {
		return model.SetLogResponse{}, err
	}
	if err := validateSetNumbers(&req.Reps, &req.Weight, &req.RestTime); err != nil {
		return model.SetLogResponse{}, err
	}

	count, err := s.sets.CountByExerciseLog(ctx, exerciseLogID)
	if err != nil {
		return model.SetLogResponse{}, err
	}

	now := s.now().UTC()
	set := model.SetLog{
		ID:            uuid.NewString(),
		ExerciseLogID: exerciseLogID,
		Order:         count + 1,
		Reps:          req.Reps,
		Weight:        req.Weight,
		RestTime:      req.RestTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.sets.Create(ctx, set); err != nil {
		return model.SetLogResponse{}, err
	}
	return set.Response(), nil
}

func (s *SetLogService) Update(ctx context.Context, userID string, id string, req model.UpdateSetLogRequest) (model.SetLogResponse, error) {
	set, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.SetLogResponse{}, err
	}
	if err := validateSetNumbers(req.Reps, req.Weight, req.RestTime); err != nil {
		return model.SetLogResponse{}, err
	}

	if req.Reps != nil {
		set.Reps = *req.Reps
	}
	if req.Weight != nil {
		set.Weight = *req.Weight
	}
	if req.RestTime != nil {
		set.RestTime = *req.RestTime
	}
	set.UpdatedAt = s.now().UTC()

	if err := s.sets.Update(ctx, set); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.SetLogResponse{}, apierror.NotFound(entitySetLog, id)
		}
		return model.SetLogResponse{}, err
	}
	return set.Response(), nil
}

func (s *SetLogService) Get(ctx context.Context, userID string, id string) (model.SetLogResponse, error) {
	set, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.SetLogResponse{}, err
	}
	return set.Response(), nil
}

func (s *SetLogService) ListByExerciseLog(ctx context.Context, userID string, exerciseLogID string) ([]model.SetLogResponse, error) {
	exerciseLogID = strings.TrimSpace(exerciseLogID)
	if err := s.requireExerciseLog(ctx, userID, exerciseLogID); err != nil {
		return nil, err
	}

	sets, err := s.sets.ListByExerciseLog(ctx, exerciseLogID)
	if err != nil {
		return nil, err
	}
	return model.SetLogResponses(sets), nil
}

func (s *SetLogService) Delete(ctx context.Context, userID string, id string) (model.DeleteResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return model.DeleteResponse{}, err
	}

	deleted, err := s.sets.Delete(ctx, id)
	if err != nil {
		return model.DeleteResponse{}, err
	}
	if !deleted {
		return model.DeleteResponse{}, apierror.NotFound(entitySetLog, id)
	}
	return model.NewDeleteResponse(entitySetLog, id), nil
}

func (s *SetLogService) owned(ctx context.Context, userID string, id string) (model.SetLog, error) {
	set, err := s.sets.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.SetLog{}, apierror.NotFound(entitySetLog, id)
	}
	if err != nil {
		return model.SetLog{}, err
	}

	owner, err := s.ownerOfExerciseLog(ctx, set.ExerciseLogID)
	if errors.Is(err, model.ErrNotFound) || (err == nil && owner != userID) {
		return model.SetLog{}, apierror.NotFound(entitySetLog, id)
	}
	return set, err
}

func (s *SetLogService) requireExerciseLog(ctx context.Context, userID string, exerciseLogID string) error {
	owner, err := s.ownerOfExerciseLog(ctx, exerciseLogID)
	if errors.Is(err, model.ErrNotFound) || (err == nil && owner != userID) {
		return apierror.MissingReference(entityExerciseLog, exerciseLogID)
	}
	return err
}

func (s *SetLogService) ownerOfExerciseLog(ctx context.Context, exerciseLogID string) (string, error) {
	log, err := s.logs.GetByID(ctx, exerciseLogID)
	if err != nil {
		return "", err
	}
	session, err := s.sessions.GetByID(ctx, log.WorkoutSessionID)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}

func validateSetNumbers(reps *int, weight *int, restTime *int) error {
	if reps != nil && *reps < 0 {
		return apierror.Invalid("reps must not be negative", "reps")
	}
	if weight != nil && *weight < 0 {
		return apierror.Invalid("weight must not be negative", "weight")
	}
	if restTime != nil && *restTime < 0 {
		return apierror.Invalid("rest time must not be negative", "rest_time")
	}
	return nil
}
