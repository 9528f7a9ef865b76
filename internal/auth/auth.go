package auth

import (
	"context"
	"errors"
	"time"
)

const (
	// clockSkewBuffer accounts for clock differences between client and server
	clockSkewBuffer = time.Minute
	// defaultTokenType is used when stored credentials carry no token type
	defaultTokenType = "Bearer"
)

// ErrNoCredentials is returned by a CredentialsStore that holds no credentials.
var ErrNoCredentials = errors.New("no credentials stored")

// CredentialsStore loads previously stored credentials.
type CredentialsStore interface {
	Load() (*Credentials, error)
}

// Credentials stores authentication tokens and metadata.
// A zero ExpiresAt marks a token that does not expire, such as an API token.
type Credentials struct {
	AccessToken string    `json:"access_token" yaml:"access_token"`
	TokenType   string    `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// IsExpired checks if the access token has expired
func (c *Credentials) IsExpired() bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	// Consider expired 1 minute early to account for clock skew
	return time.Now().After(c.ExpiresAt.Add(-clockSkewBuffer))
}

// Context is the result of a successful authorization. It scopes a
// request to a single account and is discarded once the request is done.
type Context struct {
	AccountID   string
	Credentials *Credentials
}

// Options narrows what RequireAuth resolves. The zero value asks for any
// usable account.
type Options struct {
	// AccountID, when set, skips account discovery.
	AccountID string
}

// Requirer resolves an authorization context or fails with an *Error.
type Requirer interface {
	RequireAuth(ctx context.Context, opts Options) (*Context, error)
}
