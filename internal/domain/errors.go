package domain

import "errors"

// Sentinel errors shared between the API client and the handlers.
var (
	ErrNoProfile          = errors.New("user has no profile for this role")
	ErrNotFound           = errors.New("requested resource not found")
	ErrUnauthorized       = errors.New("not authorized")
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)
