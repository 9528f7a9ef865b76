package api

import (
	"context"
	"net/http"
)

// Service is the set of control plane operations the CLI uses.
type Service interface {
	// CreateDatabase provisions a new D1 database in the given account.
	CreateDatabase(ctx context.Context, accountID string, req CreateDatabaseRequest) (*Database, error)
	// ListAccounts returns the accounts the credentials can act on.
	ListAccounts(ctx context.Context) ([]Account, error)
}

var _ Service = (*Client)(nil)

// Client handles Control Plane API operations
type Client struct {
	http HTTPDoer
}

// HTTPDoer interface for making HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates a new API client
func NewClient(http HTTPDoer) *Client {
	return &Client{
		http: http,
	}
}
