package repository

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTokensNotFound = errors.New("provider tokens not found")
)
