package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
)

// ResponseError is returned for every non-2xx response. It wraps the
// sentinel error matching StatusCode and carries the decoded "errors" object
// of the response body, if any.
type ResponseError struct {
	StatusCode int
	Errors     map[string][]string

	err error
}

func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return e.err.Error()
	}

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Errors[field], ", ")))
	}
	return fmt.Sprintf("%s (%s)", e.err, strings.Join(parts, "; "))
}

func (e *ResponseError) Unwrap() error {
	return e.err
}
