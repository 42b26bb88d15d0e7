package apierror

import (
	"fmt"
	"net/http"
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

func BadRequest(message string) *APIError {
	return New("BAD_REQUEST", message, "", http.StatusBadRequest)
}

// NotFound builds the 404 used for every missing entity, e.g. "Exercise: <id> is not found.".
func NotFound(entity string, id string) *APIError {
	return New("NOT_FOUND", fmt.Sprintf("%s: %s is not found.", entity, id), "", http.StatusNotFound)
}

// MissingReference is the 400 variant of NotFound, used when a request body points at an
// entity that does not exist.
func MissingReference(entity string, id string) *APIError {
	return New("BAD_REQUEST", fmt.Sprintf("%s: %s is not found.", entity, id), "", http.StatusBadRequest)
}

func Unauthorized(message string) *APIError {
	return New("UNAUTHORIZED", message, "", http.StatusUnauthorized)
}

// Invalid reports a rejected request field; the field name goes into Details.
func Invalid(message string, field string) *APIError {
	return New("BAD_REQUEST", message, field, http.StatusBadRequest)
}
