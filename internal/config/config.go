package config

import (
	"fmt"

	"github.com/d1ctl/d1ctl/internal/auth"
)

// Config represents the d1ctl configuration file structure.
type Config struct {
	AccountID   string            `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Credentials *auth.Credentials `json:"oauth,omitempty" yaml:"oauth,omitempty"`
}

// GetCredentials returns the stored OAuth credentials.
func (c *Config) GetCredentials() (*auth.Credentials, error) {
	if c.Credentials == nil {
		return nil, fmt.Errorf("config file has no oauth section: %w", auth.ErrNoCredentials)
	}
	return c.Credentials, nil
}

// Validate ensures the config structure is valid and coherent.
func (c *Config) Validate() error {
	if c.Credentials != nil && c.Credentials.AccessToken == "" {
		return fmt.Errorf("oauth section present but access_token is empty")
	}
	return nil
}
