package gcal

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Client calls Google APIs on behalf of a user, authenticated per call with a
// bearer access token.
type Client struct {
	extraOpts []option.ClientOption
}

// NewClient creates a Google API client. Extra options (endpoint overrides
// for tests, custom transports) apply to every call.
func NewClient(opts ...option.ClientOption) *Client {
	return &Client{extraOpts: opts}
}

func (c *Client) options(accessToken string) []option.ClientOption {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	opts := []option.ClientOption{option.WithTokenSource(ts)}
	return append(opts, c.extraOpts...)
}

// ListEvents fetches up to max events from the user's primary calendar,
// following result pages until the cap is reached.
func (c *Client) ListEvents(ctx context.Context, accessToken string, max int64) ([]*calendar.Event, error) {
	svc, err := calendar.NewService(ctx, c.options(accessToken)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	var events []*calendar.Event
	pageToken := ""
	for {
		call := svc.Events.List("primary").MaxResults(max).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		events = append(events, page.Items...)
		if int64(len(events)) >= max || page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	if int64(len(events)) > max {
		events = events[:max]
	}
	return events, nil
}

// CreateEvent creates an event on the user's primary calendar.
func (c *Client) CreateEvent(ctx context.Context, accessToken string, event *calendar.Event) error {
	svc, err := calendar.NewService(ctx, c.options(accessToken)...)
	if err != nil {
		return fmt.Errorf("failed to create calendar service: %w", err)
	}

	if _, err := svc.Events.Insert("primary", event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}
	return nil
}

// GetUserInfo fetches the Google profile of the token's owner.
func (c *Client) GetUserInfo(ctx context.Context, accessToken string) (*oauth2api.Userinfo, error) {
	svc, err := oauth2api.NewService(ctx, c.options(accessToken)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	return info, nil
}
