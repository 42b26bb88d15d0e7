//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-workout-tracker/internal/config"
	"go-workout-tracker/internal/database"
	"go-workout-tracker/internal/handler"
	"go-workout-tracker/internal/middleware"
	"go-workout-tracker/internal/model"
	"go-workout-tracker/internal/repository"
	"go-workout-tracker/internal/router"
	"go-workout-tracker/internal/service"
)

// fakeGoogle accepts identity tokens of the form "google:<email>".
type fakeGoogle struct{}

func (fakeGoogle) Validate(_ context.Context, token string) (model.IdentityClaims, error) {
	email, ok := strings.CutPrefix(token, "google:")
	if !ok || email == "" {
		return model.IdentityClaims{}, model.ErrInvalidCredential
	}
	return model.IdentityClaims{Email: email}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *model.APIError `json:"error"`
}

// newServer runs the full router against DATABASE_URL over TLS, since the auth cookies are Secure.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	require.NoError(t, database.Migrate(databaseURL, database.DirectionUp))

	db, err := database.New(context.Background(), databaseURL, database.PoolOptions{MaxConns: 4, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	cfg := &config.Config{
		RequestTimeout:   30 * time.Second,
		JWTAccessSecret:  "integration-access",
		JWTRefreshSecret: "integration-refresh",
		JWTIssuer:        "workout-tracker",
		JWTAudience:      "workout-tracker-web",
		JWTAccessTTL:     15 * time.Minute,
		JWTRefreshTTL:    720 * time.Hour,
		ClientURLs:       []string{"https://app.example.com"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      cfg.JWTAudience,
	})
	require.NoError(t, err)

	pool := db.Pool
	users := repository.NewUserRepository(pool)
	exercises := repository.NewExerciseRepository(pool)
	templates := repository.NewWorkoutTemplateRepository(pool)
	sessions := repository.NewWorkoutSessionRepository(pool)
	exerciseLogs := repository.NewExerciseLogRepository(pool)
	setLogs := repository.NewSetLogRepository(pool)

	h := router.Handlers{
		Health:          handler.NewHealthHandler(db),
		Auth:            handler.NewAuthHandler(service.NewAuthService(users, tokens, fakeGoogle{}, nil)),
		Exercise:        handler.NewExerciseHandler(service.NewExerciseService(exercises, nil, 0)),
		WorkoutTemplate: handler.NewWorkoutTemplateHandler(service.NewWorkoutTemplateService(templates, exercises)),
		WorkoutSession:  handler.NewWorkoutSessionHandler(service.NewWorkoutSessionService(sessions, templates, exerciseLogs, setLogs, nil)),
		ExerciseLog:     handler.NewExerciseLogHandler(service.NewExerciseLogService(exerciseLogs, sessions, exercises)),
		SetLog:          handler.NewSetLogHandler(service.NewSetLogService(setLogs, exerciseLogs, sessions)),
	}

	server := httptest.NewTLSServer(router.New(cfg, middleware.NewAuthMiddleware(tokens), h, nil))
	t.Cleanup(server.Close)
	return server
}

// newClient returns a client with its own cookie jar, i.e. one browser.
func newClient(t *testing.T, server *httptest.Server) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{Transport: server.Client().Transport, Jar: jar}
}

func login(t *testing.T, server *httptest.Server, client *http.Client, email string) model.AuthResponse {
	t.Helper()

	resp, env := doJSON(t, client, http.MethodPost, server.URL+"/api/v1/auth/google-login", map[string]string{"id_token": "google:" + email})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user model.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	return user
}

func doJSON(t *testing.T, client *http.Client, method string, url string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}
