package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"go-workout-tracker/internal/event"
	"go-workout-tracker/internal/model"
	"go-workout-tracker/pkg/apierror"
)

const (
	msgInvalidGoogleToken  = "Invalid Google ID token."
	msgInvalidRefreshToken = "Invalid refresh token."
	msgTokenInvalid        = "Token is invalid"
	msgLogoutSuccess       = "Logout success"
)

type tokenIssuer interface {
	IssuePair(w http.ResponseWriter, user model.UserPayload) (string, error)
	PrincipalFromToken(token string) (model.RefreshClaims, error)
	ClearCookies(w http.ResponseWriter)
}

// AuthService runs the login, logout and refresh flows. A session is live while the
// refresh token stored on the user equals the one the client presents.
type AuthService struct {
	users     UserStore
	tokens    tokenIssuer
	validator CredentialValidator
	bus       event.Bus
	now       func() time.Time
}

func NewAuthService(users UserStore, tokens tokenIssuer, validator CredentialValidator, bus event.Bus) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: validator,
		bus:       bus,
		now:       time.Now,
	}
}

func (s *AuthService) GoogleLogin(ctx context.Context, identityToken string, w http.ResponseWriter) (model.AuthResponse, error) {
	identity, err := s.validator.Validate(ctx, identityToken)
	if errors.Is(err, model.ErrInvalidCredential) {
		slog.Warn("identity token rejected", "error", err)
		return model.AuthResponse{}, apierror.BadRequest(msgInvalidGoogleToken)
	}
	if err != nil {
		return model.AuthResponse{}, err
	}

	user, err := s.users.FindByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, model.ErrNotFound):
		user = model.NewUser(uuid.NewString(), identity.Email, s.now().UTC())
		if err := s.users.Create(ctx, user); err != nil {
			return model.AuthResponse{}, err
		}
		slog.Info("user created", "user_id", user.ID)
	case err != nil:
		return model.AuthResponse{}, err
	}

	if err := s.rotate(ctx, &user, w); err != nil {
		return model.AuthResponse{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeUserSignedIn, user.ID, user.AuthResponse()))
	}

	return user.AuthResponse(), nil
}

// Logout never fails on a bad token: it reports "Token is invalid" and leaves cookies alone.
func (s *AuthService) Logout(ctx context.Context, refreshToken string, w http.ResponseWriter) (model.AuthMessageResponse, error) {
	claims, err := s.tokens.PrincipalFromToken(refreshToken)
	if err != nil {
		return model.AuthMessageResponse{Message: msgTokenInvalid}, nil
	}

	user, err := s.owner(ctx, refreshToken, claims)
	switch {
	case err == nil && user.RefreshToken == refreshToken:
		user.RefreshToken = ""
		user.UpdatedAt = s.now().UTC()
		if err := s.users.Update(ctx, user); err != nil {
			return model.AuthMessageResponse{}, err
		}
	case err != nil && !errors.Is(err, model.ErrNotFound):
		return model.AuthMessageResponse{}, err
	}

	s.tokens.ClearCookies(w)
	return model.AuthMessageResponse{Message: msgLogoutSuccess}, nil
}

// Refresh swaps a live refresh token for a new pair. Presenting a token that is no longer
// the stored one is treated as replay: the owner's stored token is cleared before failing.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string, w http.ResponseWriter) (model.AuthResponse, error) {
	claims, err := s.tokens.PrincipalFromToken(refreshToken)
	if err != nil {
		return model.AuthResponse{}, apierror.BadRequest(msgInvalidRefreshToken)
	}

	user, err := s.owner(ctx, refreshToken, claims)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResponse{}, apierror.BadRequest(msgInvalidRefreshToken)
	}
	if err != nil {
		return model.AuthResponse{}, err
	}

	if user.RefreshToken != refreshToken {
		slog.Warn("stale refresh token presented, revoking session", "user_id", user.ID, "token_id", claims.TokenID)
		user.RefreshToken = ""
		user.UpdatedAt = s.now().UTC()
		if err := s.users.Update(ctx, user); err != nil {
			return model.AuthResponse{}, err
		}
		return model.AuthResponse{}, apierror.BadRequest(msgInvalidRefreshToken)
	}

	if err := s.rotate(ctx, &user, w); err != nil {
		return model.AuthResponse{}, err
	}

	return user.AuthResponse(), nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (model.AuthResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResponse{}, apierror.NotFound("User", userID)
	}
	if err != nil {
		return model.AuthResponse{}, err
	}
	return user.AuthResponse(), nil
}

// owner resolves the user a refresh token was issued to. The subject claim is used so a
// rotated-out token still finds its owner; tokens without one fall back to the stored value.
func (s *AuthService) owner(ctx context.Context, token string, claims model.RefreshClaims) (model.User, error) {
	if claims.UserID != "" {
		return s.users.GetByID(ctx, claims.UserID)
	}
	return s.users.FindByRefreshToken(ctx, token)
}

func (s *AuthService) rotate(ctx context.Context, user *model.User, w http.ResponseWriter) error {
	refreshToken, err := s.tokens.IssuePair(w, user.Payload())
	if err != nil {
		return fmt.Errorf("issue token pair: %w", err)
	}

	user.RefreshToken = refreshToken
	user.UpdatedAt = s.now().UTC()
	return s.users.Update(ctx, *user)
}
