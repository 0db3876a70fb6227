package usecase

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"calendarhub/internal/auth"
	"calendarhub/internal/model"
	"calendarhub/internal/user/repository"
	"calendarhub/pkg/session"
)

func (uc *useCase) LoginURL(provider model.Provider, state string) (string, error) {
	switch provider {
	case model.ProviderGoogle:
		// Offline access so Google issues a refresh token on first consent.
		return uc.google.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent")), nil
	case model.ProviderOutlook:
		return uc.outlook.AuthCodeURL(state), nil
	default:
		return "", auth.ErrUnknownProvider
	}
}

func (uc *useCase) GoogleCallback(ctx context.Context, code string) (session.User, error) {
	token, err := uc.google.Exchange(ctx, code)
	if err != nil {
		return session.User{}, err
	}

	info, err := uc.gID.GetUserInfo(ctx, token.AccessToken)
	if err != nil {
		return session.User{}, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			uc.l.Warnf(ctx, "google sign-in attempt for unregistered email %s", info.Email)
			return session.User{}, auth.ErrUserNotRegistered
		}
		return session.User{}, err
	}

	if err := uc.userRepo.UpdateTokens(ctx, user.ID, model.ProviderGoogle, tokenData(token)); err != nil {
		return session.User{}, err
	}

	uc.l.Infof(ctx, "google account linked for user %s", user.ID)
	return session.User{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Picture: info.Picture,
	}, nil
}

func (uc *useCase) OutlookCallback(ctx context.Context, userID, code string) error {
	token, err := uc.outlook.Exchange(ctx, code)
	if err != nil {
		return err
	}

	// Resolve the profile so a bad token fails here, not on first sync.
	profile, err := uc.olID.GetProfile(ctx, token.AccessToken)
	if err != nil {
		return err
	}

	if err := uc.userRepo.UpdateTokens(ctx, userID, model.ProviderOutlook, tokenData(token)); err != nil {
		return err
	}

	uc.l.Infof(ctx, "outlook account %s linked for user %s", profile.Email(), userID)
	return nil
}

func tokenData(token *oauth2.Token) model.TokenData {
	return model.TokenData{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
}
