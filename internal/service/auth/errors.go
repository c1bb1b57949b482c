package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("auth.service: invalid email or password")
	ErrSessionNotFound    = errors.New("auth.service: session not found")
	ErrSessionExpired     = errors.New("auth.service: session expired")
	ErrInvalidInput       = errors.New("auth.service: invalid input")
	ErrInternal           = errors.New("auth.service: internal error")
)
