package repository

import (
	"context"

	"calendarhub/internal/model"
)

//go:generate mockery --name UserRepository

// UserRepository is the persistence contract for users and their provider
// tokens. The sync core only ever reads tokens through it.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	// Save upserts the user record and the email-to-id mapping, touching
	// UpdatedAt (and CreatedAt on first write).
	Save(ctx context.Context, user model.User) (model.User, error)
	// UpdateTokens replaces the user's credential for one provider.
	UpdateTokens(ctx context.Context, userID string, provider model.Provider, tokens model.TokenData) error
	// GetTokens returns the user's credential for one provider, or
	// ErrTokensNotFound when the provider was never linked.
	GetTokens(ctx context.Context, userID string, provider model.Provider) (model.TokenData, error)
}
