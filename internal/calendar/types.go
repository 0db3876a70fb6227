package calendar

import (
	"calendarhub/internal/model"
)

// Direction selects which provider is the read source and which is the write
// destination for one synchronization pass.
type Direction string

const (
	DirectionOutlookToGoogle Direction = "outlook-to-google"
	DirectionGoogleToOutlook Direction = "google-to-outlook"
	DirectionBoth            Direction = "both"
)

// Valid reports whether d is one of the three enumerated directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionOutlookToGoogle, DirectionGoogleToOutlook, DirectionBoth:
		return true
	}
	return false
}

// ParseDirection validates a wire-level direction string.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", ErrInvalidDirection
	}
	return d, nil
}

// SyncResult is the per-direction tally of one synchronization pass.
// Invariant: Success + Failed equals the number of source events processed.
type SyncResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// SyncOutput holds the results of the requested direction(s); the side that
// was not requested stays nil.
type SyncOutput struct {
	OutlookToGoogle *SyncResult
	GoogleToOutlook *SyncResult
}

// ProviderFlags reports which providers contributed events to a listing.
type ProviderFlags struct {
	Outlook bool `json:"outlook"`
	Google  bool `json:"google"`
}

// ListEventsOutput is the combined, start-sorted event listing.
type ListEventsOutput struct {
	Events    []model.CalendarEvent
	Providers ProviderFlags
}
