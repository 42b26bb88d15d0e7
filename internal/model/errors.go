package model

import "errors"

var (
	// Repository errors
	ErrNotFound = errors.New("not found")

	// Auth errors
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnauthorized      = errors.New("unauthorized")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
