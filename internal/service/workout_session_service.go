package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-workout-tracker/internal/event"
	"go-workout-tracker/internal/model"
	"go-workout-tracker/pkg/apierror"
)

const entityWorkoutSession = "WorkoutSession"

type WorkoutSessionService struct {
	sessions     WorkoutSessionStore
	templates    WorkoutTemplateStore
	exerciseLogs ExerciseLogStore
	setLogs      SetLogStore
	bus          event.Bus
	now          func() time.Time
}

func NewWorkoutSessionService(
	sessions WorkoutSessionStore,
	templates WorkoutTemplateStore,
	exerciseLogs ExerciseLogStore,
	setLogs SetLogStore,
	bus event.Bus,
) *WorkoutSessionService {
	return &WorkoutSessionService{
		sessions:     sessions,
		templates:    templates,
		exerciseLogs: exerciseLogs,
		setLogs:      setLogs,
		bus:          bus,
		now:          time.Now,
	}
}

// Start opens an in-progress session from one of the caller's templates.
func (s *WorkoutSessionService) Start(ctx context.Context, userID string, req model.CreateWorkoutSessionRequest) (model.WorkoutSessionResponse, error) {
	templateID := strings.TrimSpace(req.WorkoutTemplateID)
	template, err := s.templates.GetByID(ctx, templateID)
	if errors.Is(err, model.ErrNotFound) || (err == nil && template.UserID != userID) {
		return model.WorkoutSessionResponse{}, apierror.MissingReference(entityWorkoutTemplate, templateID)
	}
	if err != nil {
		return model.WorkoutSessionResponse{}, err
	}

	now := s.now().UTC()
	session := model.WorkoutSession{
		ID:                uuid.NewString(),
		UserID:            userID,
		WorkoutTemplateID: template.ID,
		Status:            model.SessionStatusInProgress,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return model.WorkoutSessionResponse{}, err
	}

	s.publish(event.TypeWorkoutSessionStarted, session)
	return session.Response(nil), nil
}

func (s *WorkoutSessionService) Update(ctx context.Context, userID string, id string, req model.UpdateWorkoutSessionRequest) (model.WorkoutSessionResponse, error) {
	session, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.WorkoutSessionResponse{}, err
	}
	previous := session.Status

	if req.Duration != nil {
		if *req.Duration < 0 {
			return model.WorkoutSessionResponse{}, apierror.Invalid("duration must not be negative", "duration")
		}
		session.Duration = *req.Duration
	}
	if req.AverageRestTime != nil {
		if *req.AverageRestTime < 0 {
			return model.WorkoutSessionResponse{}, apierror.Invalid("average rest time must not be negative", "average_rest_time")
		}
		session.AverageRestTime = *req.AverageRestTime
	}
	if req.Status != nil {
		status, ok := model.ParseSessionStatus(*req.Status)
		if !ok {
			return model.WorkoutSessionResponse{}, apierror.Invalid("invalid status", "status")
		}
		session.Status = status
	}

	completing := session.Status == model.SessionStatusCompleted && previous != model.SessionStatusCompleted
	if completing && req.AverageRestTime == nil {
		avg, err := s.setLogs.AverageRestTimeBySession(ctx, session.ID)
		if err != nil {
			return model.WorkoutSessionResponse{}, err
		}
		session.AverageRestTime = avg
	}
	session.UpdatedAt = s.now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.WorkoutSessionResponse{}, apierror.NotFound(entityWorkoutSession, id)
		}
		return model.WorkoutSessionResponse{}, err
	}

	if session.Status != previous {
		switch session.Status {
		case model.SessionStatusCompleted:
			s.publish(event.TypeWorkoutSessionCompleted, session)
		case model.SessionStatusCancelled:
			s.publish(event.TypeWorkoutSessionCancelled, session)
		}
	}

	logs, err := s.exerciseLogs.ListByWorkoutSession(ctx, session.ID)
	if err != nil {
		return model.WorkoutSessionResponse{}, err
	}
	return session.Response(logs), nil
}

func (s *WorkoutSessionService) Get(ctx context.Context, userID string, id string) (model.WorkoutSessionResponse, error) {
	session, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.WorkoutSessionResponse{}, err
	}

	logs, err := s.exerciseLogs.ListByWorkoutSession(ctx, session.ID)
	if err != nil {
		return model.WorkoutSessionResponse{}, err
	}
	return session.Response(logs), nil
}

func (s *WorkoutSessionService) List(ctx context.Context, userID string) ([]model.WorkoutSessionLight, error) {
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.WorkoutSessionLight, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, session.Light())
	}
	return out, nil
}

func (s *WorkoutSessionService) Delete(ctx context.Context, userID string, id string) (model.DeleteResponse, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return model.DeleteResponse{}, err
	}

	deleted, err := s.sessions.Delete(ctx, id)
	if err != nil {
		return model.DeleteResponse{}, err
	}
	if !deleted {
		return model.DeleteResponse{}, apierror.NotFound(entityWorkoutSession, id)
	}
	return model.NewDeleteResponse(entityWorkoutSession, id), nil
}

func (s *WorkoutSessionService) owned(ctx context.Context, userID string, id string) (model.WorkoutSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) || (err == nil && session.UserID != userID) {
		return model.WorkoutSession{}, apierror.NotFound(entityWorkoutSession, id)
	}
	return session, err
}

func (s *WorkoutSessionService) publish(t event.Type, session model.WorkoutSession) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event.New(t, session.UserID, session.Light()))
	slog.Debug("workout session event published", "type", t, "session_id", session.ID)
}
