package user

import (
	"context"

	"calendarhub/internal/model"
)

// UseCase provisions user accounts. Sign-in never creates users, so this is
// the only write path for new records.
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (model.User, error)
}

// CreateUserInput carries the provisioning fields.
type CreateUserInput struct {
	Email string
	Name  string
}
