package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CreateDatabaseRequest represents the input for creating a new D1 database.
// An empty PrimaryLocationHint is left out of the body.
type CreateDatabaseRequest struct {
	Name                string `json:"name" validate:"required"`
	PrimaryLocationHint string `json:"primary_location_hint,omitempty"`
}

// Database represents a D1 database as returned by the control plane.
type Database struct {
	UUID                string `json:"uuid" yaml:"uuid"`
	Name                string `json:"name" yaml:"name"`
	Version             string `json:"version,omitempty" yaml:"version,omitempty"`
	CreatedAt           string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	CreatedInColo       string `json:"created_in_colo,omitempty" yaml:"created_in_colo,omitempty"`
	PrimaryLocationHint string `json:"primary_location_hint,omitempty" yaml:"primary_location_hint,omitempty"`
	FileSize            int64  `json:"file_size,omitempty" yaml:"file_size,omitempty"`
	NumTables           int    `json:"num_tables,omitempty" yaml:"num_tables,omitempty"`
}

// DatabasesPath returns the D1 collection path of an account.
func DatabasesPath(accountID string) string {
	return "/accounts/" + url.PathEscape(accountID) + "/d1/database"
}

// CreateDatabase creates a new D1 database in the account.
func (c *Client) CreateDatabase(ctx context.Context, accountID string, req CreateDatabaseRequest) (*Database, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	var db Database
	if err := c.FetchResult(ctx, http.MethodPost, DatabasesPath(accountID), header, bytes.NewReader(reqBody), &db); err != nil {
		return nil, err
	}

	return &db, nil
}
