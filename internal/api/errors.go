package api

import (
	"fmt"
	"strings"
)

// ResponseInfo is a single entry of the errors or messages list of an API envelope.
type ResponseInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError is returned for any request the control plane did not complete.
// Code carries the first envelope error code and is 0 when the server sent none.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Code    int
	Message string
	Errors  []ResponseInfo
}

var _ error = (*APIError)(nil)

func newAPIError(status int, method, path string, errs []ResponseInfo, fallback string) *APIError {
	apiErr := &APIError{
		Status:  status,
		Method:  method,
		Path:    path,
		Errors:  errs,
		Message: strings.TrimSpace(fallback),
	}
	if len(errs) > 0 {
		apiErr.Code = errs[0].Code
		apiErr.Message = errs[0].Message
	}
	if apiErr.Message == "" {
		apiErr.Message = "no error details returned"
	}
	return apiErr
}

// Error returns the error message.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error %d: %s %s failed: %s", e.Status, e.Method, e.Path, e.Message)
	if e.Code != 0 {
		msg += fmt.Sprintf(" [code: %d]", e.Code)
	}
	for _, extra := range e.additional() {
		msg += fmt.Sprintf("; %s [code: %d]", extra.Message, extra.Code)
	}
	return msg
}

func (e *APIError) additional() []ResponseInfo {
	if len(e.Errors) < 2 {
		return nil
	}
	return e.Errors[1:]
}
