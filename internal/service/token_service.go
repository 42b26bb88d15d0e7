package service

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-workout-tracker/internal/model"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 30 * 24 * time.Hour
)

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	Audience      string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type accessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService mints and checks the access/refresh pair. Each token type has its own HMAC key.
type TokenService struct {
	accessKey  []byte
	refreshKey []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	switch {
	case strings.TrimSpace(cfg.AccessSecret) == "":
		return nil, errors.New("access token secret is required")
	case strings.TrimSpace(cfg.RefreshSecret) == "":
		return nil, errors.New("refresh token secret is required")
	case strings.TrimSpace(cfg.Issuer) == "":
		return nil, errors.New("token issuer is required")
	case strings.TrimSpace(cfg.Audience) == "":
		return nil, errors.New("token audience is required")
	}

	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}

	return &TokenService{
		accessKey:  []byte(cfg.AccessSecret),
		refreshKey: []byte(cfg.RefreshSecret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}, nil
}

// IssuePair signs a fresh access and refresh token, writes both as cookies and returns the
// refresh token so the caller can persist it.
func (s *TokenService) IssuePair(w http.ResponseWriter, user model.UserPayload) (string, error) {
	now := s.now().UTC()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	accessToken, err := access.SignedString(s.accessKey)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
	})
	refreshToken, err := refresh.SignedString(s.refreshKey)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}

	setTokenCookie(w, AccessTokenCookie, accessToken, s.accessTTL)
	setTokenCookie(w, RefreshTokenCookie, refreshToken, s.refreshTTL)

	return refreshToken, nil
}

// PrincipalFromToken checks a refresh token's signature, algorithm, issuer and audience.
// Expiry is not checked here; whether the session is still live is decided by comparing
// against the token stored on the user.
func (s *TokenService) PrincipalFromToken(token string) (model.RefreshClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if err := s.parse(token, claims, s.refreshKey, jwt.WithoutClaimsValidation()); err != nil {
		return model.RefreshClaims{}, err
	}
	if err := s.checkIssuerAudience(claims); err != nil {
		return model.RefreshClaims{}, err
	}

	out := model.RefreshClaims{UserID: claims.Subject, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// ValidateAccessToken fully validates an access token, expiry included.
func (s *TokenService) ValidateAccessToken(token string) (*model.AuthClaims, error) {
	claims := &accessTokenClaims{}
	err := s.parse(token, claims, s.accessKey,
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", model.ErrInvalidToken)
	}

	return &model.AuthClaims{UserID: claims.Subject, Email: claims.Email, TokenID: claims.ID}, nil
}

// ClearCookies overwrites both token cookies with empty, already expired values.
func (s *TokenService) ClearCookies(w http.ResponseWriter) {
	expired := s.now().UTC().Add(-24 * time.Hour)
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  expired,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}

func (s *TokenService) parse(token string, claims jwt.Claims, key []byte, opts ...jwt.ParserOption) error {
	if strings.TrimSpace(token) == "" {
		return model.ErrInvalidToken
	}

	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	}, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return model.ErrInvalidToken
	}
	return nil
}

func (s *TokenService) checkIssuerAudience(claims *jwt.RegisteredClaims) error {
	if claims.Issuer != s.issuer {
		return fmt.Errorf("%w: issuer mismatch", model.ErrInvalidToken)
	}
	if !slices.Contains(claims.Audience, s.audience) {
		return fmt.Errorf("%w: audience mismatch", model.ErrInvalidToken)
	}
	return nil
}

func setTokenCookie(w http.ResponseWriter, name string, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
