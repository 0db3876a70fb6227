package usecase

import (
	"context"
	"fmt"

	gcalendar "google.golang.org/api/calendar/v3"

	"calendarhub/internal/model"
	"calendarhub/internal/user/repository"
	"calendarhub/pkg/msgraph"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUserRepo serves tokens from an in-memory map keyed by provider.
type mockUserRepo struct {
	tokens map[model.Provider]model.TokenData
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return model.User{ID: id}, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return model.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) Save(ctx context.Context, user model.User) (model.User, error) {
	return user, nil
}

func (m *mockUserRepo) UpdateTokens(ctx context.Context, userID string, provider model.Provider, tokens model.TokenData) error {
	m.tokens[provider] = tokens
	return nil
}

func (m *mockUserRepo) GetTokens(ctx context.Context, userID string, provider model.Provider) (model.TokenData, error) {
	tok, ok := m.tokens[provider]
	if !ok {
		return model.TokenData{}, repository.ErrTokensNotFound
	}
	return tok, nil
}

// mockOutlook records create calls and fails the subjects listed in
// failCreate.
type mockOutlook struct {
	events     []msgraph.Event
	listErr    error
	failCreate map[string]bool
	created    []msgraph.EventPayload
	listCalls  int
}

func (m *mockOutlook) ListEvents(ctx context.Context, accessToken string, max int) ([]msgraph.Event, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockOutlook) CreateEvent(ctx context.Context, accessToken string, payload msgraph.EventPayload) error {
	if m.failCreate[payload.Subject] {
		return fmt.Errorf("create event failed with status 503")
	}
	m.created = append(m.created, payload)
	return nil
}

// mockGoogle mirrors mockOutlook, keyed by summary.
type mockGoogle struct {
	events     []*gcalendar.Event
	listErr    error
	failCreate map[string]bool
	created    []*gcalendar.Event
	listCalls  int
}

func (m *mockGoogle) ListEvents(ctx context.Context, accessToken string, max int64) ([]*gcalendar.Event, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockGoogle) CreateEvent(ctx context.Context, accessToken string, event *gcalendar.Event) error {
	if m.failCreate[event.Summary] {
		return fmt.Errorf("create event failed with status 503")
	}
	m.created = append(m.created, event)
	return nil
}

func outlookEvents(subjects ...string) []msgraph.Event {
	events := make([]msgraph.Event, len(subjects))
	for i, subject := range subjects {
		events[i] = msgraph.Event{
			ID:      fmt.Sprintf("ol-%d", i+1),
			Subject: subject,
			Start:   &msgraph.DateTimeTimeZone{DateTime: "2024-06-01T09:00:00", TimeZone: "UTC"},
			End:     &msgraph.DateTimeTimeZone{DateTime: "2024-06-01T10:00:00", TimeZone: "UTC"},
		}
	}
	return events
}

func googleEvents(summaries ...string) []*gcalendar.Event {
	events := make([]*gcalendar.Event, len(summaries))
	for i, summary := range summaries {
		events[i] = &gcalendar.Event{
			Id:      fmt.Sprintf("g-%d", i+1),
			Summary: summary,
			Start:   &gcalendar.EventDateTime{DateTime: "2024-06-02T10:00:00Z", TimeZone: "UTC"},
			End:     &gcalendar.EventDateTime{DateTime: "2024-06-02T11:00:00Z", TimeZone: "UTC"},
		}
	}
	return events
}

func bothTokens() map[model.Provider]model.TokenData {
	return map[model.Provider]model.TokenData{
		model.ProviderOutlook: {AccessToken: "ol-token"},
		model.ProviderGoogle:  {AccessToken: "g-token"},
	}
}
