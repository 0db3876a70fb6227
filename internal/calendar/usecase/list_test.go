package usecase

import (
	"context"
	"errors"
	"testing"

	gcalendar "google.golang.org/api/calendar/v3"

	"calendarhub/internal/model"
	"calendarhub/pkg/msgraph"
)

func TestListEventsMergedAndSorted(t *testing.T) {
	outlook := &mockOutlook{events: []msgraph.Event{
		{
			ID:      "ol-1",
			Subject: "Later",
			Start:   &msgraph.DateTimeTimeZone{DateTime: "2024-06-03T09:00:00"},
			End:     &msgraph.DateTimeTimeZone{DateTime: "2024-06-03T10:00:00"},
		},
	}}
	google := &mockGoogle{events: []*gcalendar.Event{
		{
			Id:      "g-1",
			Summary: "Earlier",
			Start:   &gcalendar.EventDateTime{Date: "2024-06-01"},
			End:     &gcalendar.EventDateTime{Date: "2024-06-01"},
		},
	}}
	uc := New(&mockLogger{}, &mockUserRepo{tokens: bothTokens()}, outlook, google, 50)

	out, err := uc.ListEvents(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}

	if len(out.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(out.Events))
	}
	if out.Events[0].ID != "g-1" || out.Events[1].ID != "ol-1" {
		t.Errorf("expected start-sorted order, got %+v", out.Events)
	}
	if out.Events[0].Start != "2024-06-01" {
		t.Errorf("expected all-day date form, got %s", out.Events[0].Start)
	}
	if !out.Providers.Outlook || !out.Providers.Google {
		t.Errorf("expected both provider flags, got %+v", out.Providers)
	}
}

func TestListEventsSkipsUnlinkedProvider(t *testing.T) {
	outlook := &mockOutlook{events: outlookEvents("A")}
	google := &mockGoogle{}
	repo := &mockUserRepo{tokens: map[model.Provider]model.TokenData{
		model.ProviderOutlook: {AccessToken: "ol-token"},
	}}
	uc := New(&mockLogger{}, repo, outlook, google, 50)

	out, err := uc.ListEvents(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}

	if len(out.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(out.Events))
	}
	if google.listCalls != 0 {
		t.Error("unlinked provider must not be queried")
	}
	if out.Providers.Google {
		t.Error("google flag should be false")
	}
}

func TestListEventsFetchFailureDegrades(t *testing.T) {
	outlook := &mockOutlook{listErr: errors.New("list events failed with status 500")}
	google := &mockGoogle{events: googleEvents("X")}
	uc := New(&mockLogger{}, &mockUserRepo{tokens: bothTokens()}, outlook, google, 50)

	out, err := uc.ListEvents(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("listing must not fail on one provider error: %v", err)
	}

	if len(out.Events) != 1 {
		t.Fatalf("expected 1 event from the healthy provider, got %d", len(out.Events))
	}
	if out.Providers.Outlook {
		t.Error("failed provider flag should be false")
	}
}
