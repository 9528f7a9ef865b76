package auth

import (
	"fmt"
	"net/http"

	internalhttp "github.com/d1ctl/d1ctl/internal/http"
)

var _ internalhttp.HTTPDoer = (*TokenDoer)(nil)

// TokenDoer is an HTTPDoer that adds the authorization header to every request.
type TokenDoer struct {
	creds *Credentials
	doer  internalhttp.HTTPDoer
}

// NewTokenDoer wraps doer so requests are sent with creds.
func NewTokenDoer(creds *Credentials, doer internalhttp.HTTPDoer) *TokenDoer {
	return &TokenDoer{
		creds: creds,
		doer:  doer,
	}
}

// Do performs an authenticated HTTP request.
func (d *TokenDoer) Do(req *http.Request) (*http.Response, error) {
	tokenType := d.creds.TokenType
	if tokenType == "" {
		tokenType = defaultTokenType
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Authorization", fmt.Sprintf("%s %s", tokenType, d.creds.AccessToken))

	return d.doer.Do(req)
}
