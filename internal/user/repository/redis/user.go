package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"calendarhub/internal/model"
	"calendarhub/internal/user/repository"
)

// GetByID loads a user by id.
func (r *Repository) GetByID(ctx context.Context, id string) (model.User, error) {
	raw, err := r.rdb.Get(ctx, userPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("redis get user: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return model.User{}, fmt.Errorf("corrupt user record %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail resolves the email mapping, then loads the user.
func (r *Repository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	id, err := r.rdb.Get(ctx, emailToIDPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return model.User{}, repository.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("redis get email mapping: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Save upserts the user record and the email-to-id mapping.
func (r *Repository) Save(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now()
	user.UpdatedAt = now
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.Tokens == nil {
		user.Tokens = map[model.Provider]*model.TokenData{}
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return model.User{}, fmt.Errorf("marshal user: %w", err)
	}

	if err := r.rdb.Set(ctx, userPrefix+user.ID, raw, 0).Err(); err != nil {
		return model.User{}, fmt.Errorf("redis set user: %w", err)
	}
	if err := r.rdb.Set(ctx, emailToIDPrefix+user.Email, user.ID, 0).Err(); err != nil {
		return model.User{}, fmt.Errorf("redis set email mapping: %w", err)
	}

	return user, nil
}

// UpdateTokens replaces one provider's credential on the stored user.
func (r *Repository) UpdateTokens(ctx context.Context, userID string, provider model.Provider, tokens model.TokenData) error {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Tokens == nil {
		user.Tokens = map[model.Provider]*model.TokenData{}
	}
	user.Tokens[provider] = &tokens

	if _, err := r.Save(ctx, user); err != nil {
		return fmt.Errorf("update %s tokens for user %s: %w", provider, userID, err)
	}
	return nil
}

// GetTokens reads one provider's credential for a user.
func (r *Repository) GetTokens(ctx context.Context, userID string, provider model.Provider) (model.TokenData, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return model.TokenData{}, err
	}

	tokens, ok := user.Tokens[provider]
	if !ok || tokens == nil || tokens.AccessToken == "" {
		return model.TokenData{}, repository.ErrTokensNotFound
	}
	return *tokens, nil
}

var _ repository.UserRepository = (*Repository)(nil)
