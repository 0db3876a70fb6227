package calendar_test

import (
	"encoding/json"
	"errors"
	"testing"

	gcalendar "google.golang.org/api/calendar/v3"

	"calendarhub/internal/calendar"
	"calendarhub/pkg/msgraph"
)

func outlookFixture() msgraph.Event {
	return msgraph.Event{
		ID:      "ol-1",
		Subject: "Design review",
		Start:   &msgraph.DateTimeTimeZone{DateTime: "2024-06-01T09:00:00.0000000", TimeZone: "Pacific Standard Time"},
		End:     &msgraph.DateTimeTimeZone{DateTime: "2024-06-01T10:00:00.0000000", TimeZone: "Pacific Standard Time"},
		Organizer: &msgraph.Organizer{
			EmailAddress: msgraph.EmailAddress{Name: "Alice", Address: "alice@example.com"},
		},
	}
}

func TestOutlookToGoogle(t *testing.T) {
	got, err := calendar.TranslateOutlookToGoogle(outlookFixture())
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	if got.Summary != "Design review" {
		t.Errorf("unexpected summary: %s", got.Summary)
	}
	if got.Description != "Synced from Outlook. Original organizer: Alice" {
		t.Errorf("unexpected description: %s", got.Description)
	}
	if got.Start.DateTime != "2024-06-01T09:00:00.0000000" || got.Start.TimeZone != "Pacific Standard Time" {
		t.Errorf("expected start pass-through, got %+v", got.Start)
	}
	if got.ExtendedProperties.Private["outlookId"] != "ol-1" {
		t.Errorf("expected outlookId extension property, got %+v", got.ExtendedProperties)
	}
}

func TestOutlookToGoogleUnknownOrganizer(t *testing.T) {
	ev := outlookFixture()
	ev.Organizer = nil

	got, err := calendar.TranslateOutlookToGoogle(ev)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got.Description != "Synced from Outlook. Original organizer: Unknown" {
		t.Errorf("unexpected description: %s", got.Description)
	}
}

func TestOutlookToGoogleTimeZoneDefault(t *testing.T) {
	ev := outlookFixture()
	ev.Start.TimeZone = ""
	ev.End.TimeZone = ""

	got, err := calendar.TranslateOutlookToGoogle(ev)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got.Start.TimeZone != "UTC" || got.End.TimeZone != "UTC" {
		t.Errorf("expected UTC default, got start=%s end=%s", got.Start.TimeZone, got.End.TimeZone)
	}
}

func TestOutlookToGoogleMissingStart(t *testing.T) {
	ev := outlookFixture()
	ev.Start = nil

	_, err := calendar.TranslateOutlookToGoogle(ev)
	var terr *calendar.TranslationError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TranslationError, got %v", err)
	}
	if terr.Field != "start" || terr.EventID != "ol-1" {
		t.Errorf("unexpected error detail: %+v", terr)
	}
}

func TestGoogleToOutlookTimed(t *testing.T) {
	got, err := calendar.TranslateGoogleToOutlook(&gcalendar.Event{
		Id:          "g-1",
		Summary:     "1:1",
		Description: "weekly check-in",
		Start:       &gcalendar.EventDateTime{DateTime: "2024-06-02T10:00:00+02:00", TimeZone: "Europe/Berlin"},
		End:         &gcalendar.EventDateTime{DateTime: "2024-06-02T10:30:00+02:00", TimeZone: "Europe/Berlin"},
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	if got.Subject != "1:1" {
		t.Errorf("unexpected subject: %s", got.Subject)
	}
	if got.Start.DateTime != "2024-06-02T10:00:00+02:00" || got.Start.TimeZone != "Europe/Berlin" {
		t.Errorf("unexpected start: %+v", got.Start)
	}
	if got.Body.ContentType != "text" || got.Body.Content != "Synced from Google. weekly check-in" {
		t.Errorf("unexpected body: %+v", got.Body)
	}
}

func TestGoogleToOutlookAllDaySynthesis(t *testing.T) {
	got, err := calendar.TranslateGoogleToOutlook(&gcalendar.Event{
		Id:      "g-2",
		Summary: "Offsite",
		Start:   &gcalendar.EventDateTime{Date: "2024-06-01"},
		End:     &gcalendar.EventDateTime{Date: "2024-06-01"},
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	if got.Start.DateTime != "2024-06-01T00:00:00" {
		t.Errorf("unexpected start synthesis: %s", got.Start.DateTime)
	}
	if got.End.DateTime != "2024-06-01T23:59:59" {
		t.Errorf("unexpected end synthesis: %s", got.End.DateTime)
	}
	if got.Start.TimeZone != "UTC" || got.End.TimeZone != "UTC" {
		t.Errorf("expected UTC default, got start=%s end=%s", got.Start.TimeZone, got.End.TimeZone)
	}
}

func TestGoogleToOutlookEmptyDescription(t *testing.T) {
	got, err := calendar.TranslateGoogleToOutlook(&gcalendar.Event{
		Id:    "g-3",
		Start: &gcalendar.EventDateTime{Date: "2024-06-01"},
		End:   &gcalendar.EventDateTime{Date: "2024-06-01"},
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got.Body.Content != "Synced from Google. " {
		t.Errorf("unexpected body content: %q", got.Body.Content)
	}
}

func TestGoogleToOutlookMissingBoundary(t *testing.T) {
	cases := []struct {
		name  string
		ev    *gcalendar.Event
		field string
	}{
		{"nil start", &gcalendar.Event{Id: "g-4", End: &gcalendar.EventDateTime{Date: "2024-06-01"}}, "start"},
		{"empty start", &gcalendar.Event{Id: "g-5", Start: &gcalendar.EventDateTime{}, End: &gcalendar.EventDateTime{Date: "2024-06-01"}}, "start"},
		{"nil end", &gcalendar.Event{Id: "g-6", Start: &gcalendar.EventDateTime{Date: "2024-06-01"}}, "end"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendar.TranslateGoogleToOutlook(tc.ev)
			var terr *calendar.TranslationError
			if !errors.As(err, &terr) {
				t.Fatalf("expected TranslationError, got %v", err)
			}
			if terr.Field != tc.field {
				t.Errorf("expected missing %s, got %s", tc.field, terr.Field)
			}
		})
	}
}

// Translating the same record twice must produce byte-identical payloads.
func TestTranslationDeterminism(t *testing.T) {
	olEv := outlookFixture()
	a, err := calendar.TranslateOutlookToGoogle(olEv)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	b, _ := calendar.TranslateOutlookToGoogle(olEv)

	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)
	if string(aJSON) != string(bJSON) {
		t.Errorf("outlook->google not deterministic:\n%s\n%s", aJSON, bJSON)
	}

	gEv := &gcalendar.Event{
		Id:    "g-1",
		Start: &gcalendar.EventDateTime{Date: "2024-06-01"},
		End:   &gcalendar.EventDateTime{Date: "2024-06-02"},
	}
	c, err := calendar.TranslateGoogleToOutlook(gEv)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	d, _ := calendar.TranslateGoogleToOutlook(gEv)

	cJSON, _ := json.Marshal(c)
	dJSON, _ := json.Marshal(d)
	if string(cJSON) != string(dJSON) {
		t.Errorf("google->outlook not deterministic:\n%s\n%s", cJSON, dJSON)
	}
}

// An inverted range (start after end) is an upstream defect that must pass
// through without correction.
func TestInvertedRangePassThrough(t *testing.T) {
	ev := outlookFixture()
	ev.Start.DateTime = "2024-06-01T18:00:00"
	ev.End.DateTime = "2024-06-01T09:00:00"

	got, err := calendar.TranslateOutlookToGoogle(ev)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got.Start.DateTime != "2024-06-01T18:00:00" || got.End.DateTime != "2024-06-01T09:00:00" {
		t.Errorf("expected inverted range pass-through, got start=%s end=%s", got.Start.DateTime, got.End.DateTime)
	}
}
