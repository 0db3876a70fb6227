package user

import "errors"

// ErrEmailExists rejects provisioning an email that already has an account.
var ErrEmailExists = errors.New("email already registered")
