package auth

import (
	"context"

	oauth2api "google.golang.org/api/oauth2/v2"

	"calendarhub/internal/model"
	"calendarhub/pkg/msgraph"
	"calendarhub/pkg/session"
)

// UseCase drives the OAuth login flows for both providers.
type UseCase interface {
	// LoginURL builds the provider consent URL carrying the given state.
	LoginURL(provider model.Provider, state string) (string, error)
	// GoogleCallback exchanges the code, resolves the Google profile and
	// attaches the tokens to the already-registered user. Unregistered
	// emails are rejected with ErrUserNotRegistered.
	GoogleCallback(ctx context.Context, code string) (session.User, error)
	// OutlookCallback exchanges the code and links the Outlook account to
	// the signed-in user.
	OutlookCallback(ctx context.Context, userID, code string) error
}

// GoogleIdentity resolves the profile behind a Google access token,
// satisfied by pkg/gcal.Client.
type GoogleIdentity interface {
	GetUserInfo(ctx context.Context, accessToken string) (*oauth2api.Userinfo, error)
}

// OutlookIdentity resolves the profile behind a Graph access token,
// satisfied by pkg/msgraph.Client.
type OutlookIdentity interface {
	GetProfile(ctx context.Context, accessToken string) (msgraph.Profile, error)
}
