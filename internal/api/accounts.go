package api

import (
	"context"
	"net/http"
)

const (
	accountsPath = "/accounts?per_page=50"
)

// Account represents an account the credentials can act on.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListAccounts retrieves the accounts available to the authenticated user.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.FetchResult(ctx, http.MethodGet, accountsPath, nil, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
