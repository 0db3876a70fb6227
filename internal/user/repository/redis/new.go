package redis

import (
	"github.com/redis/go-redis/v9"

	"calendarhub/pkg/log"
)

// Key layout: user:<id> holds the user JSON, email-to-id:<email> maps an
// email to the user id.
const (
	userPrefix      = "user:"
	emailToIDPrefix = "email-to-id:"
)

// Repository is the Redis-backed user store.
type Repository struct {
	rdb *redis.Client
	l   log.Logger
}

// New creates a Redis user repository.
func New(rdb *redis.Client, l log.Logger) *Repository {
	return &Repository{rdb: rdb, l: l}
}
