package config

import (
	"fmt"

	"github.com/d1ctl/d1ctl/internal/api"
	"github.com/d1ctl/d1ctl/internal/auth"
	"github.com/d1ctl/d1ctl/internal/http"
	"github.com/pterm/pterm"
)

// APIServiceFactory creates an authenticated API service for an authorization context
type APIServiceFactory func(httpClient http.HTTPDoer, env *Env, authCtx *auth.Context) (api.Service, error)

// AuthorizerFactory creates the collaborator that resolves credentials and the account
type AuthorizerFactory func(httpClient http.HTTPDoer, env *Env, store Store, chooser auth.Chooser, interactive bool) (auth.Requirer, error)

// NewAPIService creates an API service that authenticates every request with authCtx's credentials.
func NewAPIService(httpClient http.HTTPDoer, env *Env, authCtx *auth.Context) (api.Service, error) {
	return newClient(httpClient, env, authCtx.Credentials)
}

// NewAuthorizer creates an auth.Resolver from the environment and the config file.
// The API token and account from the environment take precedence over the file.
func NewAuthorizer(httpClient http.HTTPDoer, env *Env, store Store, chooser auth.Chooser, interactive bool) (auth.Requirer, error) {
	accountID := env.AccountID
	if accountID == "" && store.Exists() {
		cfg, err := store.Load()
		if err != nil {
			// credential loading reports the same problem if it matters
			pterm.Debug.Printfln("Ignoring config file for account lookup: %s", err)
		} else {
			accountID = cfg.AccountID
		}
	}

	accounts := func(creds *auth.Credentials) (auth.AccountLister, error) {
		return newClient(httpClient, env, creds)
	}

	return auth.NewResolver(
		NewCredentialStoreAdapter(store),
		accounts,
		auth.WithAPIToken(env.APIToken),
		auth.WithAccountID(accountID),
		auth.WithChooser(chooser, interactive),
	), nil
}

func newClient(httpClient http.HTTPDoer, env *Env, creds *auth.Credentials) (*api.Client, error) {
	if creds == nil {
		return nil, fmt.Errorf("no credentials to authenticate with")
	}

	apiHTTPClient, err := http.NewClient(env.APIBaseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return api.NewClient(auth.NewTokenDoer(creds, apiHTTPClient)), nil
}
