package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserInactive       = errors.New("user account is inactive")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrSessionRevoked  = errors.New("session has been revoked")
)

// Profile errors
var (
	ErrProfileNotFound      = errors.New("beauty profile not found")
	ErrProfileExists        = errors.New("beauty profile already exists")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrInvalidProfileField  = errors.New("invalid profile field")
	ErrMissingProfileFields = errors.New("personal_color and skin_undertone are required")
)
