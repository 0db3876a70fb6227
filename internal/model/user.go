package model

import "time"

// Provider is an external calendar service a user can link.
type Provider string

const (
	ProviderOutlook Provider = "outlook"
	ProviderGoogle  Provider = "google"
)

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	return p == ProviderOutlook || p == ProviderGoogle
}

// TokenData is a user's OAuth credential for one provider.
type TokenData struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// User is a registered account with its linked provider tokens.
type User struct {
	ID        string                  `json:"id"`
	Email     string                  `json:"email"`
	Name      string                  `json:"name"`
	Picture   string                  `json:"picture,omitempty"`
	Tokens    map[Provider]*TokenData `json:"tokens"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
