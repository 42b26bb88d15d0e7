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

const entityExerciseLog = "ExerciseLog"

// ExerciseLogService records which exercises were done in a session and in what order.
// Ownership is inherited from the session.
type ExerciseLogService struct {
	logs      ExerciseLogStore
	sessions  WorkoutSessionStore
	exercises ExerciseStore
	now       func() time.Time
}

func NewExerciseLogService(logs ExerciseLogStore, sessions WorkoutSessionStore, exercises ExerciseStore) *ExerciseLogService {
	return &ExerciseLogService{logs: logs, sessions: sessions, exercises: exercises, now: time.Now}
}

// Create appends a log to the session; its order is one past the current count.
func (s *ExerciseLogService) Create(ctx context.Context, userID string, req model.CreateExerciseLogRequest) (model.ExerciseLogLight, error) {
	sessionID := strings.TrimSpace(req.WorkoutSessionID)
	if err := s.requireSession(ctx, userID, sessionID); err != nil {
		return model.ExerciseLogLight{}, err
	}

	exerciseID := strings.TrimSpace(req.ExerciseID)
	if err := s.requireExercise(ctx, exerciseID); err != nil {
		return model.ExerciseLogLight{}, err
	}

	count, err := s.logs.CountByWorkoutSession(ctx, sessionID)
	if err != nil {
		return model.ExerciseLogLight{}, err
	}

	now := s.now().UTC()
	log := model.ExerciseLog{
		ID:               uuid.NewString(),
		WorkoutSessionID: sessionID,
		ExerciseID:       exerciseID,
		Order:            count + 1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return model.ExerciseLogLight{}, err
	}
	return log.Light(), nil
}

func (s *ExerciseLogService) Update(ctx context.Context, userID string, id string, req model.UpdateExerciseLogRequest) (model.ExerciseLogLight, error) {
	log, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ExerciseLogLight{}, err
	}

	if req.ExerciseID != nil {
		exerciseID := strings.TrimSpace(*req.ExerciseID)
		if err := s.requireExercise(ctx, exerciseID); err != nil {
			return model.ExerciseLogLight{}, err
		}
		log.ExerciseID = exerciseID
	}
	if req.Order != nil {
		if *req.Order < 1 {
			return model.ExerciseLogLight{}, apierror.Invalid("order must be at least 1", "order")
		}
		log.Order = *req.Order
	}
	log.UpdatedAt = s.now().UTC()

	if err := s.logs.Update(ctx, log); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ExerciseLogLight{}, apierror.NotFound(entityExerciseLog, id)
		}
		return model.ExerciseLogLight{}, err
	}
	return log.Light(), nil
}

func (s *ExerciseLogService) Get(ctx context.Context, userID string, id string) (model.ExerciseLogLight, error) {
	log, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ExerciseLogLight{}, err
	}
	return log.Light(), nil
}

func (s *ExerciseLogService) ListBySession(ctx context.Context, userID string, sessionID string) ([]model.ExerciseLogLight, error) {
	sessionID = strings.TrimSpace(sessionID)
	if err := s.requireSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByWorkoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return model.ExerciseLogLights(logs), nil
}

func (s *ExerciseLogService) Delete(ctx context.Context, userID string, id string) (model.DeleteResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return model.DeleteResponse{}, err
	}

	deleted, err := s.logs.Delete(ctx, id)
	if err != nil {
		return model.DeleteResponse{}, err
	}
	if !deleted {
		return model.DeleteResponse{}, apierror.NotFound(entityExerciseLog, id)
	}
	return model.NewDeleteResponse(entityExerciseLog, id), nil
}

func (s *ExerciseLogService) owned(ctx context.Context, userID string, id string) (model.ExerciseLog, error) {
	log, err := s.logs.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.ExerciseLog{}, apierror.NotFound(entityExerciseLog, id)
	}
	if err != nil {
		return model.ExerciseLog{}, err
	}

	session, err := s.sessions.GetByID(ctx, log.WorkoutSessionID)
	if errors.Is(err, model.ErrNotFound) || (err == nil && session.UserID != userID) {
		return model.ExerciseLog{}, apierror.NotFound(entityExerciseLog, id)
	}
	return log, err
}

func (s *ExerciseLogService) requireSession(ctx context.Context, userID string, sessionID string) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if errors.Is(err, model.ErrNotFound) || (err == nil && session.UserID != userID) {
		return apierror.MissingReference(entityWorkoutSession, sessionID)
	}
	return err
}

func (s *ExerciseLogService) requireExercise(ctx context.Context, exerciseID string) error {
	_, err := s.exercises.GetByID(ctx, exerciseID)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.MissingReference(entityExercise, exerciseID)
	}
	return err
}
