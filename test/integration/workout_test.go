//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-workout-tracker/internal/model"
)

func TestWorkoutLifecycle(t *testing.T) {
	server := newServer(t)
	client := newClient(t, server)
	login(t, server, client, uuid.NewString()+"@example.com")
	api := server.URL + "/api/v1"

	resp, env := doJSON(t, client, http.MethodPost, api+"/exercises", map[string]string{
		"name":         "Bench Press " + uuid.NewString()[:8],
		"description":  "flat barbell",
		"muscle_group": "Chest",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	exercise := decodeData[model.ExerciseResponse](t, env)

	resp, env = doJSON(t, client, http.MethodPost, api+"/workout-templates", map[string]any{
		"name":         "Push day",
		"exercise_ids": []string{exercise.ID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	template := decodeData[model.WorkoutTemplateResponse](t, env)

	resp, env = doJSON(t, client, http.MethodGet, api+"/workout-templates/"+template.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	withExercises := decodeData[model.WorkoutTemplateWithExercises](t, env)
	require.Len(t, withExercises.Exercises, 1)
	assert.Equal(t, exercise.ID, withExercises.Exercises[0].ID)

	resp, env = doJSON(t, client, http.MethodPost, api+"/workout-sessions", map[string]string{"workout_template_id": template.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	session := decodeData[model.WorkoutSessionResponse](t, env)
	assert.Equal(t, model.SessionStatusInProgress, session.Status)

	var logIDs []string
	for i := 0; i < 2; i++ {
		resp, env = doJSON(t, client, http.MethodPost, api+"/exercise-logs", map[string]string{
			"exercise_id":        exercise.ID,
			"workout_session_id": session.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		log := decodeData[model.ExerciseLogLight](t, env)
		assert.Equal(t, i+1, log.Order)
		logIDs = append(logIDs, log.ID)
	}

	for _, rest := range []int{60, 120} {
		resp, _ = doJSON(t, client, http.MethodPost, api+"/set-logs", map[string]int{
			"reps": 8, "weight": 80, "rest_time": rest,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing exercise log id must be rejected")

		resp, env = doJSON(t, client, http.MethodPost, api+"/set-logs", map[string]any{
			"exercise_log_id": logIDs[0], "reps": 8, "weight": 80, "rest_time": rest,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env = doJSON(t, client, http.MethodGet, api+"/set-logs?exercise_log_id="+logIDs[0], nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeData[model.SetLogList](t, env).SetLogs, 2)

	resp, env = doJSON(t, client, http.MethodPut, api+"/workout-sessions/"+session.ID, map[string]any{
		"duration": 1800,
		"status":   "Completed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	completed := decodeData[model.WorkoutSessionResponse](t, env)
	assert.Equal(t, model.SessionStatusCompleted, completed.Status)
	assert.Equal(t, 90, completed.AverageRestTime)
	assert.Len(t, completed.ExerciseLogs, 2)

	intruder := newClient(t, server)
	login(t, server, intruder, uuid.NewString()+"@example.com")
	resp, env = doJSON(t, intruder, http.MethodGet, api+"/workout-sessions/"+session.ID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "WorkoutSession: "+session.ID+" is not found.", env.Error.Message)

	resp, env = doJSON(t, client, http.MethodDelete, api+"/workout-sessions/"+session.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "WorkoutSession with id "+session.ID+" has been deleted successfully.", decodeData[model.DeleteResponse](t, env).Message)

	resp, _ = doJSON(t, client, http.MethodGet, api+"/exercise-logs/"+logIDs[0], nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
