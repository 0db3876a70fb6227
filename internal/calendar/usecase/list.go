package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	gcalendar "google.golang.org/api/calendar/v3"

	"calendarhub/internal/calendar"
	"calendarhub/internal/model"
	"calendarhub/internal/user/repository"
	"calendarhub/pkg/msgraph"
)

// ListEvents fetches upcoming events from every provider the user has
// linked, merged and sorted by start time. A provider without tokens is
// skipped; a provider whose fetch fails contributes an empty list rather
// than failing the whole listing.
func (uc *useCase) ListEvents(ctx context.Context, userID string) (calendar.ListEventsOutput, error) {
	var out calendar.ListEventsOutput

	if outlookTok, err := uc.userRepo.GetTokens(ctx, userID, model.ProviderOutlook); err == nil {
		events, err := uc.outlook.ListEvents(ctx, outlookTok.AccessToken, uc.pageSize)
		if err != nil {
			uc.l.Errorf(ctx, "list outlook events for user %s: %v", userID, err)
		}
		for _, ev := range events {
			out.Events = append(out.Events, normalizeOutlookEvent(ev))
		}
	} else if !errors.Is(err, repository.ErrTokensNotFound) {
		return out, err
	}

	if googleTok, err := uc.userRepo.GetTokens(ctx, userID, model.ProviderGoogle); err == nil {
		events, err := uc.google.ListEvents(ctx, googleTok.AccessToken, int64(uc.pageSize))
		if err != nil {
			uc.l.Errorf(ctx, "list google events for user %s: %v", userID, err)
		}
		for _, ev := range events {
			out.Events = append(out.Events, normalizeGoogleEvent(ev))
		}
	} else if !errors.Is(err, repository.ErrTokensNotFound) {
		return out, err
	}

	sort.SliceStable(out.Events, func(i, j int) bool {
		return parseEventTime(out.Events[i].Start).Before(parseEventTime(out.Events[j].Start))
	})

	for _, ev := range out.Events {
		switch ev.Provider {
		case model.ProviderOutlook:
			out.Providers.Outlook = true
		case model.ProviderGoogle:
			out.Providers.Google = true
		}
	}

	return out, nil
}

func normalizeOutlookEvent(ev msgraph.Event) model.CalendarEvent {
	e := model.CalendarEvent{
		ID:       ev.ID,
		Title:    ev.Subject,
		Provider: model.ProviderOutlook,
	}
	if ev.Start != nil {
		e.Start = ev.Start.DateTime
	}
	if ev.End != nil {
		e.End = ev.End.DateTime
	}
	return e
}

func normalizeGoogleEvent(ev *gcalendar.Event) model.CalendarEvent {
	e := model.CalendarEvent{
		ID:       ev.Id,
		Title:    ev.Summary,
		Provider: model.ProviderGoogle,
	}
	if ev.Start != nil {
		e.Start = firstNonEmpty(ev.Start.DateTime, ev.Start.Date)
	}
	if ev.End != nil {
		e.End = firstNonEmpty(ev.End.DateTime, ev.End.Date)
	}
	return e
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// parseEventTime best-effort parses the start forms the two providers emit:
// RFC3339, Graph's fractional local time, bare local time, and all-day dates.
func parseEventTime(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
