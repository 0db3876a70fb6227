package calendar

import (
	"errors"
	"fmt"

	"calendarhub/internal/model"
)

// ErrInvalidDirection rejects a direction outside the enumerated set.
var ErrInvalidDirection = errors.New("invalid sync direction")

// MissingTokensError means the user never linked the provider a direction
// needs. Raised before any network call.
type MissingTokensError struct {
	Provider model.Provider
}

func (e *MissingTokensError) Error() string {
	return fmt.Sprintf("%s account is not connected", e.Provider)
}

// SourceFetchError means a provider's list-events call failed. Fatal to its
// direction: no create call is attempted.
type SourceFetchError struct {
	Provider model.Provider
	Err      error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s events: %v", e.Provider, e.Err)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }

// TranslationError means a source event lacks a field the destination payload
// requires. Isolated per event: it counts as one failure in the tally.
type TranslationError struct {
	EventID string
	Field   string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("event %s: missing %s", e.EventID, e.Field)
}
