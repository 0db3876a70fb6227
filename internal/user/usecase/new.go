package usecase

import (
	"calendarhub/internal/user"
	"calendarhub/internal/user/repository"
	"calendarhub/pkg/log"
)

type useCase struct {
	l        log.Logger
	userRepo repository.UserRepository
}

// New creates the user use case.
func New(l log.Logger, userRepo repository.UserRepository) user.UseCase {
	return &useCase{
		l:        l,
		userRepo: userRepo,
	}
}
