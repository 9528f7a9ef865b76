package auth_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/d1ctl/d1ctl/internal/api"
	"github.com/d1ctl/d1ctl/internal/auth"
	authmock "github.com/d1ctl/d1ctl/internal/auth/mock"
)

func TestResolver_RequireAuth(t *testing.T) {
	validCreds := &auth.Credentials{
		AccessToken: "oauth-token",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	accounts := []api.Account{
		{ID: "acc-1", Name: "Personal"},
		{ID: "acc-2", Name: "Work"},
	}

	tests := []struct {
		name            string
		opts            auth.Options
		setup           func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption)
		expectedError   error
		expectedMessage string
		expected        *auth.Context
	}{
		{
			name: "api token and account from environment",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				return authmock.NewMockCredentialsStore(ctrl), authmock.NewMockAccountLister(ctrl), []auth.ResolverOption{
					auth.WithAPIToken("api-token"),
					auth.WithAccountID("acc-env"),
				}
			},
			expected: &auth.Context{
				AccountID:   "acc-env",
				Credentials: &auth.Credentials{AccessToken: "api-token", TokenType: "Bearer"},
			},
		},
		{
			name: "options account wins",
			opts: auth.Options{AccountID: "acc-opt"},
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				return authmock.NewMockCredentialsStore(ctrl), authmock.NewMockAccountLister(ctrl), []auth.ResolverOption{
					auth.WithAPIToken("api-token"),
					auth.WithAccountID("acc-env"),
				}
			},
			expected: &auth.Context{
				AccountID:   "acc-opt",
				Credentials: &auth.Credentials{AccessToken: "api-token", TokenType: "Bearer"},
			},
		},
		{
			name: "stored credentials",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				store := authmock.NewMockCredentialsStore(ctrl)
				store.EXPECT().Load().Return(validCreds, nil)
				return store, authmock.NewMockAccountLister(ctrl), []auth.ResolverOption{auth.WithAccountID("acc-cfg")}
			},
			expected: &auth.Context{AccountID: "acc-cfg", Credentials: validCreds},
		},
		{
			name: "no config file",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				store := authmock.NewMockCredentialsStore(ctrl)
				store.EXPECT().Load().Return(nil, fmt.Errorf("failed to read config file: %w", os.ErrNotExist))
				return store, authmock.NewMockAccountLister(ctrl), nil
			},
			expectedError: auth.ErrNotLoggedIn,
		},
		{
			name: "no stored credentials",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				store := authmock.NewMockCredentialsStore(ctrl)
				store.EXPECT().Load().Return(nil, auth.ErrNoCredentials)
				return store, authmock.NewMockAccountLister(ctrl), nil
			},
			expectedError: auth.ErrNotLoggedIn,
		},
		{
			name: "empty access token",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				store := authmock.NewMockCredentialsStore(ctrl)
				store.EXPECT().Load().Return(&auth.Credentials{}, nil)
				return store, authmock.NewMockAccountLister(ctrl), nil
			},
			expectedError: auth.ErrNotLoggedIn,
		},
		{
			name: "expired credentials",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				store := authmock.NewMockCredentialsStore(ctrl)
				store.EXPECT().Load().Return(&auth.Credentials{
					AccessToken: "old",
					ExpiresAt:   time.Now().Add(-time.Hour),
				}, nil)
				return store, authmock.NewMockAccountLister(ctrl), nil
			},
			expectedError: auth.ErrSessionExpired,
		},
		{
			name: "broken config file",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				store := authmock.NewMockCredentialsStore(ctrl)
				store.EXPECT().Load().Return(nil, errors.New("failed to parse config file"))
				return store, authmock.NewMockAccountLister(ctrl), nil
			},
			expectedMessage: "unable to load stored credentials: failed to parse config file",
		},
		{
			name: "single account discovered",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				lister := authmock.NewMockAccountLister(ctrl)
				lister.EXPECT().ListAccounts(gomock.Any()).Return(accounts[:1], nil)
				return authmock.NewMockCredentialsStore(ctrl), lister, []auth.ResolverOption{auth.WithAPIToken("api-token")}
			},
			expected: &auth.Context{
				AccountID:   "acc-1",
				Credentials: &auth.Credentials{AccessToken: "api-token", TokenType: "Bearer"},
			},
		},
		{
			name: "no accounts",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				lister := authmock.NewMockAccountLister(ctrl)
				lister.EXPECT().ListAccounts(gomock.Any()).Return([]api.Account{}, nil)
				return authmock.NewMockCredentialsStore(ctrl), lister, []auth.ResolverOption{auth.WithAPIToken("api-token")}
			},
			expectedError: auth.ErrNoAccounts,
		},
		{
			name: "list accounts fails",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				lister := authmock.NewMockAccountLister(ctrl)
				lister.EXPECT().ListAccounts(gomock.Any()).Return(nil, assert.AnError)
				return authmock.NewMockCredentialsStore(ctrl), lister, []auth.ResolverOption{auth.WithAPIToken("api-token")}
			},
			expectedMessage: "failed to list accounts",
		},
		{
			name: "several accounts non-interactive",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				lister := authmock.NewMockAccountLister(ctrl)
				lister.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
				chooser := authmock.NewMockChooser(ctrl)
				return authmock.NewMockCredentialsStore(ctrl), lister, []auth.ResolverOption{
					auth.WithAPIToken("api-token"),
					auth.WithChooser(chooser, false),
				}
			},
			expectedMessage: "more than one account available",
		},
		{
			name: "several accounts interactive",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				lister := authmock.NewMockAccountLister(ctrl)
				chooser := authmock.NewMockChooser(ctrl)
				gomock.InOrder(
					lister.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil),
					chooser.EXPECT().FilterableSelect("Select an account", []string{"Personal (acc-1)", "Work (acc-2)"}).Return(1, "Work (acc-2)", nil),
				)
				return authmock.NewMockCredentialsStore(ctrl), lister, []auth.ResolverOption{
					auth.WithAPIToken("api-token"),
					auth.WithChooser(chooser, true),
				}
			},
			expected: &auth.Context{
				AccountID:   "acc-2",
				Credentials: &auth.Credentials{AccessToken: "api-token", TokenType: "Bearer"},
			},
		},
		{
			name: "selection cancelled",
			setup: func(ctrl *gomock.Controller) (auth.CredentialsStore, *authmock.MockAccountLister, []auth.ResolverOption) {
				lister := authmock.NewMockAccountLister(ctrl)
				chooser := authmock.NewMockChooser(ctrl)
				lister.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
				chooser.EXPECT().FilterableSelect(gomock.Any(), gomock.Any()).Return(0, "", errors.New("selection cancelled"))
				return authmock.NewMockCredentialsStore(ctrl), lister, []auth.ResolverOption{
					auth.WithAPIToken("api-token"),
					auth.WithChooser(chooser, true),
				}
			},
			expectedMessage: "selection cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store, lister, opts := tt.setup(ctrl)
			factory := func(creds *auth.Credentials) (auth.AccountLister, error) {
				return lister, nil
			}

			resolver := auth.NewResolver(store, factory, opts...)
			got, err := resolver.RequireAuth(context.Background(), tt.opts)

			switch {
			case tt.expectedError != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			case tt.expectedMessage != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedMessage)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestResolver_RequireAuth_AuthErrorIsTyped(t *testing.T) {
	resolver := auth.NewResolver(nil, nil)

	_, err := resolver.RequireAuth(context.Background(), auth.Options{})

	var authErr *auth.Error
	require.True(t, errors.As(err, &authErr))
	assert.NotEmpty(t, authErr.Help())
}

func TestResolver_RequireAuth_FactoryError(t *testing.T) {
	factory := func(creds *auth.Credentials) (auth.AccountLister, error) {
		return nil, errors.New("invalid base url")
	}

	resolver := auth.NewResolver(nil, factory, auth.WithAPIToken("api-token"))
	_, err := resolver.RequireAuth(context.Background(), auth.Options{})

	assert.EqualError(t, err, "failed to create account client: invalid base url")
}
