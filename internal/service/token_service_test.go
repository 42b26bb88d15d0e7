package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-workout-tracker/internal/model"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	ts, err := NewTokenService(TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		Issuer:        "workout-tracker",
		Audience:      "workout-tracker-web",
	})
	require.NoError(t, err)
	return ts
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestNewTokenService_RequiresEverySetting(t *testing.T) {
	t.Parallel()

	full := TokenConfig{AccessSecret: "a", RefreshSecret: "r", Issuer: "i", Audience: "aud"}

	cases := map[string]func(c *TokenConfig){
		"access secret":  func(c *TokenConfig) { c.AccessSecret = "" },
		"refresh secret": func(c *TokenConfig) { c.RefreshSecret = " " },
		"issuer":         func(c *TokenConfig) { c.Issuer = "" },
		"audience":       func(c *TokenConfig) { c.Audience = "" },
	}
	for name, mutate := range cases {
		cfg := full
		mutate(&cfg)
		_, err := NewTokenService(cfg)
		assert.Error(t, err, name)
	}

	ts, err := NewTokenService(full)
	require.NoError(t, err)
	assert.Equal(t, DefaultAccessTTL, ts.accessTTL)
	assert.Equal(t, DefaultRefreshTTL, ts.refreshTTL)
}

func TestTokenService_IssuePairSetsCookies(t *testing.T) {
	t.Parallel()

	ts := newTestTokenService(t)
	rec := httptest.NewRecorder()

	refresh, err := ts.IssuePair(rec, model.UserPayload{ID: "u1", Email: "a@test.com"})
	require.NoError(t, err)
	require.NotEmpty(t, refresh)

	cookies := cookiesByName(rec)
	require.Contains(t, cookies, AccessTokenCookie)
	require.Contains(t, cookies, RefreshTokenCookie)

	access := cookies[AccessTokenCookie]
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteNoneMode, access.SameSite)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)

	assert.Equal(t, refresh, cookies[RefreshTokenCookie].Value)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), cookies[RefreshTokenCookie].MaxAge)

	claims, err := ts.ValidateAccessToken(access.Value)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@test.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
}

func TestTokenService_PairsAreUnique(t *testing.T) {
	t.Parallel()

	ts := newTestTokenService(t)
	payload := model.UserPayload{ID: "u1", Email: "a@test.com"}

	first, err := ts.IssuePair(httptest.NewRecorder(), payload)
	require.NoError(t, err)
	second, err := ts.IssuePair(httptest.NewRecorder(), payload)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_PrincipalFromToken(t *testing.T) {
	t.Parallel()

	ts := newTestTokenService(t)
	rec := httptest.NewRecorder()
	refresh, err := ts.IssuePair(rec, model.UserPayload{ID: "u1", Email: "a@test.com"})
	require.NoError(t, err)

	claims, err := ts.PrincipalFromToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.NotEmpty(t, claims.TokenID)

	// An access token is signed with the other key.
	_, err = ts.PrincipalFromToken(cookiesByName(rec)[AccessTokenCookie].Value)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = ts.PrincipalFromToken("")
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = ts.PrincipalFromToken("not.a.jwt")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_PrincipalFromToken_IgnoresExpiry(t *testing.T) {
	t.Parallel()

	ts := newTestTokenService(t)
	ts.now = func() time.Time { return time.Now().Add(-90 * 24 * time.Hour) }

	refresh, err := ts.IssuePair(httptest.NewRecorder(), model.UserPayload{ID: "u1", Email: "a@test.com"})
	require.NoError(t, err)

	ts.now = time.Now
	claims, err := ts.PrincipalFromToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}

func TestTokenService_PrincipalFromToken_RejectsForeignTokens(t *testing.T) {
	t.Parallel()

	ts := newTestTokenService(t)
	sign := func(method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	base := jwt.RegisteredClaims{Subject: "u1", Issuer: "workout-tracker", Audience: jwt.ClaimStrings{"workout-tracker-web"}}

	wrongIssuer := base
	wrongIssuer.Issuer = "someone-else"
	_, err := ts.PrincipalFromToken(sign(jwt.SigningMethodHS256, []byte("refresh-secret"), wrongIssuer))
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	wrongAudience := base
	wrongAudience.Audience = jwt.ClaimStrings{"mobile"}
	_, err = ts.PrincipalFromToken(sign(jwt.SigningMethodHS256, []byte("refresh-secret"), wrongAudience))
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = ts.PrincipalFromToken(sign(jwt.SigningMethodHS512, []byte("refresh-secret"), base))
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = ts.PrincipalFromToken(sign(jwt.SigningMethodHS256, []byte("other-secret"), base))
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = ts.PrincipalFromToken(sign(jwt.SigningMethodHS256, []byte("refresh-secret"), base))
	assert.NoError(t, err)
}

func TestTokenService_ValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	ts := newTestTokenService(t)
	ts.now = func() time.Time { return time.Now().Add(-time.Hour) }

	rec := httptest.NewRecorder()
	_, err := ts.IssuePair(rec, model.UserPayload{ID: "u1", Email: "a@test.com"})
	require.NoError(t, err)

	ts.now = time.Now
	_, err = ts.ValidateAccessToken(cookiesByName(rec)[AccessTokenCookie].Value)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenService_ClearCookies(t *testing.T) {
	t.Parallel()

	ts := newTestTokenService(t)
	rec := httptest.NewRecorder()
	ts.ClearCookies(rec)

	cookies := cookiesByName(rec)
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		c, ok := cookies[name]
		require.True(t, ok, name)
		assert.Empty(t, c.Value)
		assert.True(t, c.Expires.Before(time.Now()))
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
		assert.Equal(t, "/", c.Path)
	}
}
