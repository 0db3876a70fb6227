package usecase

import (
	"golang.org/x/oauth2"

	"calendarhub/internal/auth"
	"calendarhub/internal/user/repository"
	"calendarhub/pkg/log"
)

type useCase struct {
	l        log.Logger
	userRepo repository.UserRepository
	google   *oauth2.Config
	outlook  *oauth2.Config
	gID      auth.GoogleIdentity
	olID     auth.OutlookIdentity
}

// New creates the auth use case. The two oauth2 configs carry the provider
// endpoints, credentials and redirect URLs.
func New(
	l log.Logger,
	userRepo repository.UserRepository,
	google *oauth2.Config,
	outlook *oauth2.Config,
	gID auth.GoogleIdentity,
	olID auth.OutlookIdentity,
) auth.UseCase {
	return &useCase{
		l:        l,
		userRepo: userRepo,
		google:   google,
		outlook:  outlook,
		gID:      gID,
		olID:     olID,
	}
}
