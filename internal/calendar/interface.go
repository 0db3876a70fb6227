package calendar

import (
	"context"

	gcalendar "google.golang.org/api/calendar/v3"

	"calendarhub/pkg/msgraph"
)

//go:generate mockery --name UseCase

// UseCase is the calendar domain entry point.
type UseCase interface {
	// Sync runs the requested direction(s) for the user. Per-event failures
	// are recorded in the returned tallies; a source-fetch failure aborts
	// the whole call with a SourceFetchError.
	Sync(ctx context.Context, userID string, direction Direction) (SyncOutput, error)
	// ListEvents returns the user's upcoming events from every linked
	// provider, merged and sorted by start time.
	ListEvents(ctx context.Context, userID string) (ListEventsOutput, error)
}

// OutlookClient is the Microsoft Graph collaborator, satisfied by
// pkg/msgraph.Client.
type OutlookClient interface {
	ListEvents(ctx context.Context, accessToken string, max int) ([]msgraph.Event, error)
	CreateEvent(ctx context.Context, accessToken string, payload msgraph.EventPayload) error
}

// GoogleClient is the Google Calendar collaborator, satisfied by
// pkg/gcal.Client.
type GoogleClient interface {
	ListEvents(ctx context.Context, accessToken string, max int64) ([]*gcalendar.Event, error)
	CreateEvent(ctx context.Context, accessToken string, event *gcalendar.Event) error
}
