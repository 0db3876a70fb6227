package calendar

import (
	gcalendar "google.golang.org/api/calendar/v3"

	"calendarhub/pkg/msgraph"
)

// Both providers default to UTC when the source carries no timezone. The
// original system baked this default in; it is preserved here deliberately.
const defaultTimeZone = "UTC"

// TranslateOutlookToGoogle maps an Outlook event to a Google create-event
// payload. Start/end pass through untouched, including start > end; the
// source event id travels as a private extended property for future dedup
// (nothing reads it back yet).
func TranslateOutlookToGoogle(ev msgraph.Event) (*gcalendar.Event, error) {
	if ev.Start == nil || ev.Start.DateTime == "" {
		return nil, &TranslationError{EventID: ev.ID, Field: "start"}
	}
	if ev.End == nil || ev.End.DateTime == "" {
		return nil, &TranslationError{EventID: ev.ID, Field: "end"}
	}

	organizer := "Unknown"
	if ev.Organizer != nil && ev.Organizer.EmailAddress.Name != "" {
		organizer = ev.Organizer.EmailAddress.Name
	}

	return &gcalendar.Event{
		Summary:     ev.Subject,
		Description: "Synced from Outlook. Original organizer: " + organizer,
		Start: &gcalendar.EventDateTime{
			DateTime: ev.Start.DateTime,
			TimeZone: timeZoneOrDefault(ev.Start.TimeZone),
		},
		End: &gcalendar.EventDateTime{
			DateTime: ev.End.DateTime,
			TimeZone: timeZoneOrDefault(ev.End.TimeZone),
		},
		ExtendedProperties: &gcalendar.EventExtendedProperties{
			Private: map[string]string{"outlookId": ev.ID},
		},
	}, nil
}

// TranslateGoogleToOutlook maps a Google event to a Graph create-event
// payload. All-day events (date, no time-of-day) synthesize a full-day
// dateTime range; the description is carried in a plain-text body.
func TranslateGoogleToOutlook(ev *gcalendar.Event) (msgraph.EventPayload, error) {
	start, err := outlookBoundary(ev, ev.Start, "start", "T00:00:00")
	if err != nil {
		return msgraph.EventPayload{}, err
	}
	end, err := outlookBoundary(ev, ev.End, "end", "T23:59:59")
	if err != nil {
		return msgraph.EventPayload{}, err
	}

	return msgraph.EventPayload{
		Subject: ev.Summary,
		Start:   start,
		End:     end,
		Body: msgraph.ItemBody{
			ContentType: "text",
			Content:     "Synced from Google. " + ev.Description,
		},
	}, nil
}

func outlookBoundary(ev *gcalendar.Event, edt *gcalendar.EventDateTime, field, allDaySuffix string) (msgraph.DateTimeTimeZone, error) {
	if edt == nil {
		return msgraph.DateTimeTimeZone{}, &TranslationError{EventID: ev.Id, Field: field}
	}
	switch {
	case edt.DateTime != "":
		return msgraph.DateTimeTimeZone{
			DateTime: edt.DateTime,
			TimeZone: timeZoneOrDefault(edt.TimeZone),
		}, nil
	case edt.Date != "":
		return msgraph.DateTimeTimeZone{
			DateTime: edt.Date + allDaySuffix,
			TimeZone: timeZoneOrDefault(edt.TimeZone),
		}, nil
	default:
		return msgraph.DateTimeTimeZone{}, &TranslationError{EventID: ev.Id, Field: field}
	}
}

func timeZoneOrDefault(tz string) string {
	if tz == "" {
		return defaultTimeZone
	}
	return tz
}
