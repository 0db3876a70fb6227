package auth

import "errors"

var (
	// ErrUnknownProvider rejects a login provider outside outlook/google.
	ErrUnknownProvider = errors.New("unknown oauth provider")
	// ErrUserNotRegistered means the Google account has no provisioned user.
	// Sign-in never auto-creates users.
	ErrUserNotRegistered = errors.New("user is not registered")
)
