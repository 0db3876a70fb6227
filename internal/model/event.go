package model

// CalendarEvent is the provider-agnostic view of an event used for display.
// It only exists transiently between a fetch and the response; start and end
// keep the provider's string form (date-time or all-day date).
type CalendarEvent struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Provider Provider `json:"provider"`
}
