package auth

import (
	"fmt"
	"strings"

	"github.com/d1ctl/d1ctl/internal/api"
)

var _ error = (*Error)(nil)

// Error is returned whenever no usable credentials or account could be
// resolved. Help is displayed to the user alongside the message.
type Error struct {
	msg  string
	help string
	err  error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.err)
	}
	return e.msg
}

// Help returns guidance on how to fix the error.
func (e *Error) Help() string {
	return e.help
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

const helpLogin = `No usable credentials were found.
Set the CLOUDFLARE_API_TOKEN environment variable (a .env file in the current
directory is read as well), or store an OAuth access token in the d1ctl
config file (see D1CTL_CONFIG).`

var (
	// ErrNotLoggedIn is returned when neither an API token nor stored credentials exist.
	ErrNotLoggedIn = &Error{
		msg:  "not logged in",
		help: helpLogin,
	}

	// ErrSessionExpired is returned when the stored access token has expired.
	ErrSessionExpired = &Error{
		msg: "the stored access token has expired",
		help: `Stored OAuth access tokens are not refreshed by d1ctl.
Log in again with your usual tooling, or set CLOUDFLARE_API_TOKEN instead.`,
	}

	// ErrNoAccounts is returned when the credentials cannot see any account.
	ErrNoAccounts = &Error{
		msg: "no accounts available for these credentials",
		help: `The token is valid but does not grant access to any account.
Check the token permissions, or set CLOUDFLARE_ACCOUNT_ID explicitly.`,
	}
)

func newCredentialsError(err error) *Error {
	return &Error{
		msg:  "unable to load stored credentials",
		help: helpLogin,
		err:  err,
	}
}

func newMultipleAccountsError(accounts []api.Account) *Error {
	lines := make([]string, 0, len(accounts))
	for _, account := range accounts {
		lines = append(lines, fmt.Sprintf("  %s: %s", account.Name, account.ID))
	}
	return &Error{
		msg: "more than one account available but unable to select one in non-interactive mode",
		help: "Set CLOUDFLARE_ACCOUNT_ID to one of the following accounts:\n" +
			strings.Join(lines, "\n"),
	}
}
