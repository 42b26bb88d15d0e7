package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"

	"go-workout-tracker/internal/model"
)

// CredentialValidator verifies an identity token issued by the external identity provider.
type CredentialValidator interface {
	Validate(ctx context.Context, identityToken string) (model.IdentityClaims, error)
}

type payloadValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// GoogleValidator checks Google ID tokens. Signature, issuer and expiry checks are done by
// the idtoken package. An empty client id accepts any audience.
type GoogleValidator struct {
	clientID string
	validate payloadValidator
}

func NewGoogleValidator(clientID string) *GoogleValidator {
	return &GoogleValidator{clientID: strings.TrimSpace(clientID), validate: idtoken.Validate}
}

func (v *GoogleValidator) Validate(ctx context.Context, identityToken string) (model.IdentityClaims, error) {
	identityToken = strings.TrimSpace(identityToken)
	if identityToken == "" {
		return model.IdentityClaims{}, model.ErrInvalidCredential
	}

	payload, err := v.validate(ctx, identityToken, v.clientID)
	if err != nil {
		if !tokenRejected(err) {
			return model.IdentityClaims{}, fmt.Errorf("verify identity token: %w", err)
		}
		return model.IdentityClaims{}, fmt.Errorf("%w: %v", model.ErrInvalidCredential, err)
	}

	email, _ := payload.Claims["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return model.IdentityClaims{}, fmt.Errorf("%w: email claim missing", model.ErrInvalidCredential)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return model.IdentityClaims{}, fmt.Errorf("%w: email not verified", model.ErrInvalidCredential)
	}

	return model.IdentityClaims{Email: email, Subject: payload.Subject}, nil
}

// tokenRejected tells a verdict on the token apart from a failure to reach Google's signing
// certs. idtoken prefixes its verdicts with "idtoken:" and returns decode errors for
// malformed segments unwrapped; transport errors come back bare.
func tokenRejected(err error) bool {
	var corrupt base64.CorruptInputError
	var syntax *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.As(err, &corrupt), errors.As(err, &syntax), errors.As(err, &typeErr):
		return true
	}

	msg := err.Error()
	return strings.HasPrefix(msg, "idtoken:") && !strings.Contains(msg, "unable to retrieve cert")
}
