package usecase

import (
	"calendarhub/internal/calendar"
	"calendarhub/internal/user/repository"
	"calendarhub/pkg/log"
)

// defaultPageSize caps how many events one sync pass reads from a source
// provider.
const defaultPageSize = 50

type useCase struct {
	l        log.Logger
	userRepo repository.UserRepository
	outlook  calendar.OutlookClient
	google   calendar.GoogleClient
	pageSize int
}

// New creates the calendar use case. A non-positive pageSize falls back to
// the default cap of 50.
func New(l log.Logger, userRepo repository.UserRepository, outlook calendar.OutlookClient, google calendar.GoogleClient, pageSize int) calendar.UseCase {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &useCase{
		l:        l,
		userRepo: userRepo,
		outlook:  outlook,
		google:   google,
		pageSize: pageSize,
	}
}
