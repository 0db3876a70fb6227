package gcal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"calendarhub/pkg/gcal"
)

func TestListEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendars/primary/events" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{
			"items": [
				{
					"id": "g-1",
					"summary": "Team lunch",
					"start": {"date": "2024-06-01"},
					"end": {"date": "2024-06-01"}
				},
				{
					"id": "g-2",
					"summary": "1:1",
					"start": {"dateTime": "2024-06-02T10:00:00Z", "timeZone": "UTC"},
					"end": {"dateTime": "2024-06-02T10:30:00Z", "timeZone": "UTC"}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gcal.NewClient(option.WithEndpoint(ts.URL))
	events, err := client.ListEvents(context.Background(), "tok", 50)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Start.Date != "2024-06-01" {
		t.Errorf("expected all-day start date, got %+v", events[0].Start)
	}
	if events[1].Summary != "1:1" {
		t.Errorf("unexpected summary: %s", events[1].Summary)
	}
}

func TestListEventsPagination(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageToken") == "next-1" {
			w.Write([]byte(`{"items": [{"id": "g-3", "summary": "C"}]}`))
			return
		}
		w.Write([]byte(`{"items": [{"id": "g-1"}, {"id": "g-2"}], "nextPageToken": "next-1"}`))
	}))
	defer ts.Close()

	client := gcal.NewClient(option.WithEndpoint(ts.URL))

	events, err := client.ListEvents(context.Background(), "tok", 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events across pages, got %d", len(events))
	}

	events, err = client.ListEvents(context.Background(), "tok", 2)
	if err != nil {
		t.Fatalf("list events capped: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected cap of 2 events, got %d", len(events))
	}
}

func TestListEventsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := gcal.NewClient(option.WithEndpoint(ts.URL))
	if _, err := client.ListEvents(context.Background(), "expired", 50); err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestCreateEvent(t *testing.T) {
	var got calendar.Event
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"id": "created-1"}`))
	}))
	defer ts.Close()

	client := gcal.NewClient(option.WithEndpoint(ts.URL))
	err := client.CreateEvent(context.Background(), "tok", &calendar.Event{
		Summary:     "Standup",
		Description: "Synced from Outlook. Original organizer: Alice",
		Start:       &calendar.EventDateTime{DateTime: "2024-06-01T09:00:00", TimeZone: "UTC"},
		End:         &calendar.EventDateTime{DateTime: "2024-06-01T09:15:00", TimeZone: "UTC"},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{"outlookId": "ev-1"},
		},
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if got.Summary != "Standup" {
		t.Errorf("unexpected summary sent: %s", got.Summary)
	}
	if got.ExtendedProperties == nil || got.ExtendedProperties.Private["outlookId"] != "ev-1" {
		t.Errorf("expected outlookId extension property, got %+v", got.ExtendedProperties)
	}
}

func TestCreateEventError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := gcal.NewClient(option.WithEndpoint(ts.URL))
	if err := client.CreateEvent(context.Background(), "tok", &calendar.Event{Summary: "x"}); err == nil {
		t.Fatal("expected create event error")
	}
}

func TestGetUserInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth2/v2/userinfo" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id": "g-user-1", "email": "alice@example.com", "name": "Alice", "picture": "https://p/1"}`))
	}))
	defer ts.Close()

	client := gcal.NewClient(option.WithEndpoint(ts.URL))
	info, err := client.GetUserInfo(context.Background(), "tok")
	if err != nil {
		t.Fatalf("get userinfo: %v", err)
	}
	if info.Email != "alice@example.com" || info.Name != "Alice" {
		t.Errorf("unexpected userinfo: %+v", info)
	}
}
