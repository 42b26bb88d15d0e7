package model

import "time"

// User is the identity anchor. An empty RefreshToken means no active session.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IdentityClaims is what the identity provider vouches for.
type IdentityClaims struct {
	Email   string
	Subject string
}

// UserPayload is the subset of a user that goes into signed tokens.
type UserPayload struct {
	ID    string
	Email string
}

// AuthClaims is the principal extracted from a valid access token.
type AuthClaims struct {
	UserID  string `json:"sub"`
	Email   string `json:"email"`
	TokenID string `json:"jti"`
}

// RefreshClaims is the principal extracted from a refresh token.
type RefreshClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

type AuthResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthMessageResponse struct {
	Message string `json:"message"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token"`
}

func NewUser(id string, email string, now time.Time) User {
	return User{ID: id, Email: email, CreatedAt: now, UpdatedAt: now}
}

func (u User) Payload() UserPayload {
	return UserPayload{ID: u.ID, Email: u.Email}
}

func (u User) AuthResponse() AuthResponse {
	return AuthResponse{ID: u.ID, Email: u.Email}
}
