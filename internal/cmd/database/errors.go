package database

import (
	"errors"

	"github.com/d1ctl/d1ctl/internal/api"
)

// codeDuplicateName is the API error code for a database name already in use.
const codeDuplicateName = 7502

var _ error = (*DuplicateNameError)(nil)

// DuplicateNameError is returned when the account already has a database
// with the requested name.
type DuplicateNameError struct {
	Name string
	err  error
}

// Error returns the error message.
func (e *DuplicateNameError) Error() string {
	return "a database with that name already exists"
}

// Help returns guidance on how to fix the error.
func (e *DuplicateNameError) Help() string {
	return "Choose a different name, or delete the existing '" + e.Name + "' database first."
}

// Unwrap returns the API error the server sent.
func (e *DuplicateNameError) Unwrap() error {
	return e.err
}

type translator func(name string, err *api.APIError) error

// translators maps API error codes to domain errors. Codes not listed are
// returned as is.
var translators = map[int]translator{
	codeDuplicateName: func(name string, err *api.APIError) error {
		return &DuplicateNameError{Name: name, err: err}
	},
}

func translate(name string, err error) error {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	if t, ok := translators[apiErr.Code]; ok {
		return t(name, apiErr)
	}
	return err
}
