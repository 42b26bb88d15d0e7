package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-workout-tracker/internal/model"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) FindByRefreshToken(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user model.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) GetByID(ctx context.Context, id string) (model.Exercise, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) List(ctx context.Context) ([]model.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Exercise, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Create(ctx context.Context, exercise model.Exercise) error {
	return m.Called(ctx, exercise).Error(0)
}

func (m *MockExerciseRepository) Update(ctx context.Context, exercise model.Exercise) error {
	return m.Called(ctx, exercise).Error(0)
}

func (m *MockExerciseRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockWorkoutTemplateRepository struct {
	mock.Mock
}

func (m *MockWorkoutTemplateRepository) GetByID(ctx context.Context, id string) (model.WorkoutTemplate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.WorkoutTemplate), args.Error(1)
}

func (m *MockWorkoutTemplateRepository) ListByUser(ctx context.Context, userID string) ([]model.WorkoutTemplate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkoutTemplate), args.Error(1)
}

func (m *MockWorkoutTemplateRepository) CreateWithExercises(ctx context.Context, template model.WorkoutTemplate, exerciseIDs []string) error {
	return m.Called(ctx, template, exerciseIDs).Error(0)
}

func (m *MockWorkoutTemplateRepository) UpdateWithExercises(ctx context.Context, template model.WorkoutTemplate, exerciseIDs *[]string) error {
	return m.Called(ctx, template, exerciseIDs).Error(0)
}

func (m *MockWorkoutTemplateRepository) Exercises(ctx context.Context, templateID string) ([]model.Exercise, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Exercise), args.Error(1)
}

func (m *MockWorkoutTemplateRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockWorkoutSessionRepository struct {
	mock.Mock
}

func (m *MockWorkoutSessionRepository) GetByID(ctx context.Context, id string) (model.WorkoutSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.WorkoutSession), args.Error(1)
}

func (m *MockWorkoutSessionRepository) ListByUser(ctx context.Context, userID string) ([]model.WorkoutSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorkoutSession), args.Error(1)
}

func (m *MockWorkoutSessionRepository) Create(ctx context.Context, session model.WorkoutSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockWorkoutSessionRepository) Update(ctx context.Context, session model.WorkoutSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockWorkoutSessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockExerciseLogRepository struct {
	mock.Mock
}

func (m *MockExerciseLogRepository) GetByID(ctx context.Context, id string) (model.ExerciseLog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ExerciseLog), args.Error(1)
}

func (m *MockExerciseLogRepository) ListByWorkoutSession(ctx context.Context, sessionID string) ([]model.ExerciseLog, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExerciseLog), args.Error(1)
}

func (m *MockExerciseLogRepository) CountByWorkoutSession(ctx context.Context, sessionID string) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (m *MockExerciseLogRepository) Create(ctx context.Context, log model.ExerciseLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockExerciseLogRepository) Update(ctx context.Context, log model.ExerciseLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockExerciseLogRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSetLogRepository struct {
	mock.Mock
}

func (m *MockSetLogRepository) GetByID(ctx context.Context, id string) (model.SetLog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.SetLog), args.Error(1)
}

func (m *MockSetLogRepository) ListByExerciseLog(ctx context.Context, exerciseLogID string) ([]model.SetLog, error) {
	args := m.Called(ctx, exerciseLogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SetLog), args.Error(1)
}

func (m *MockSetLogRepository) CountByExerciseLog(ctx context.Context, exerciseLogID string) (int, error) {
	args := m.Called(ctx, exerciseLogID)
	return args.Int(0), args.Error(1)
}

func (m *MockSetLogRepository) AverageRestTimeBySession(ctx context.Context, sessionID string) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (m *MockSetLogRepository) Create(ctx context.Context, set model.SetLog) error {
	return m.Called(ctx, set).Error(0)
}

func (m *MockSetLogRepository) Update(ctx context.Context, set model.SetLog) error {
	return m.Called(ctx, set).Error(0)
}

func (m *MockSetLogRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
