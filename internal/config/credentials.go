package config

import "github.com/d1ctl/d1ctl/internal/auth"

var _ auth.CredentialsStore = (*CredentialStoreAdapter)(nil)

// CredentialStoreAdapter adapts Store to auth.CredentialsStore
type CredentialStoreAdapter struct {
	store Store
}

// NewCredentialStoreAdapter creates a new credentials store adapter
func NewCredentialStoreAdapter(store Store) *CredentialStoreAdapter {
	return &CredentialStoreAdapter{store: store}
}

// Load implements auth.CredentialsStore
func (a *CredentialStoreAdapter) Load() (*auth.Credentials, error) {
	config, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	return config.GetCredentials()
}
