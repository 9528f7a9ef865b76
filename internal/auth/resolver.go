package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/d1ctl/d1ctl/internal/api"
	"github.com/pterm/pterm"
)

// AccountLister lists the accounts visible to a set of credentials.
type AccountLister interface {
	ListAccounts(ctx context.Context) ([]api.Account, error)
}

// AccountListerFactory builds an AccountLister authenticated with creds.
type AccountListerFactory func(creds *Credentials) (AccountLister, error)

// Chooser asks the user to pick one of several options.
type Chooser interface {
	FilterableSelect(prompt string, options []string) (int, string, error)
}

// ResolverOption is for optional configuration of a Resolver.
type ResolverOption func(*Resolver)

// WithAPIToken sets an API token that takes precedence over stored credentials.
func WithAPIToken(token string) ResolverOption {
	return func(r *Resolver) {
		r.apiToken = token
	}
}

// WithAccountID sets the account to use when Options does not name one.
func WithAccountID(id string) ResolverOption {
	return func(r *Resolver) {
		r.accountID = id
	}
}

// WithChooser enables interactive account selection when interactive is true.
func WithChooser(chooser Chooser, interactive bool) ResolverOption {
	return func(r *Resolver) {
		r.chooser = chooser
		r.interactive = interactive
	}
}

var _ Requirer = (*Resolver)(nil)

// Resolver implements Requirer from an API token or stored credentials,
// discovering the account through the control plane when none is configured.
type Resolver struct {
	store       CredentialsStore
	accounts    AccountListerFactory
	apiToken    string
	accountID   string
	chooser     Chooser
	interactive bool
}

// NewResolver returns a Resolver reading credentials from store.
func NewResolver(store CredentialsStore, accounts AccountListerFactory, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:    store,
		accounts: accounts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RequireAuth resolves credentials and the account to act on.
// Missing or expired credentials fail before any request is made.
func (r *Resolver) RequireAuth(ctx context.Context, opts Options) (*Context, error) {
	creds, err := r.credentials()
	if err != nil {
		return nil, err
	}

	accountID := opts.AccountID
	if accountID == "" {
		accountID = r.accountID
	}
	if accountID == "" {
		accountID, err = r.discoverAccount(ctx, creds)
		if err != nil {
			return nil, err
		}
	}

	return &Context{
		AccountID:   accountID,
		Credentials: creds,
	}, nil
}

func (r *Resolver) credentials() (*Credentials, error) {
	if r.apiToken != "" {
		pterm.Debug.Println("Using API token from the environment")
		return &Credentials{AccessToken: r.apiToken, TokenType: defaultTokenType}, nil
	}

	if r.store == nil {
		return nil, ErrNotLoggedIn
	}

	creds, err := r.store.Load()
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, ErrNoCredentials):
		return nil, ErrNotLoggedIn
	case err != nil:
		return nil, newCredentialsError(err)
	case creds == nil || creds.AccessToken == "":
		return nil, ErrNotLoggedIn
	case creds.IsExpired():
		return nil, ErrSessionExpired
	}

	pterm.Debug.Println("Using stored OAuth credentials")
	return creds, nil
}

func (r *Resolver) discoverAccount(ctx context.Context, creds *Credentials) (string, error) {
	lister, err := r.accounts(creds)
	if err != nil {
		return "", fmt.Errorf("failed to create account client: %w", err)
	}

	accounts, err := lister.ListAccounts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list accounts: %w", err)
	}

	switch len(accounts) {
	case 0:
		return "", ErrNoAccounts
	case 1:
		pterm.Debug.Printfln("Using the only available account %s", accounts[0].ID)
		return accounts[0].ID, nil
	}

	if !r.interactive || r.chooser == nil {
		return "", newMultipleAccountsError(accounts)
	}

	options := make([]string, len(accounts))
	for i, account := range accounts {
		options[i] = fmt.Sprintf("%s (%s)", account.Name, account.ID)
	}
	idx, _, err := r.chooser.FilterableSelect("Select an account", options)
	if err != nil {
		return "", err
	}

	return accounts[idx].ID, nil
}
