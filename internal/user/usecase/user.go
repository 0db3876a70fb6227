package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"calendarhub/internal/model"
	"calendarhub/internal/user"
	"calendarhub/internal/user/repository"
)

func (uc *useCase) Create(ctx context.Context, input user.CreateUserInput) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return model.User{}, user.ErrEmailExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, err
	}

	created, err := uc.userRepo.Save(ctx, model.User{
		ID:    "user_" + uuid.NewString(),
		Email: email,
		Name:  strings.TrimSpace(input.Name),
	})
	if err != nil {
		return model.User{}, err
	}

	uc.l.Infof(ctx, "provisioned user %s (%s)", created.ID, created.Email)
	return created, nil
}
