package service

import "errors"

var (
	// ErrUnauthorized is returned when a request carries no token or a token
	// that no user holds.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("username or password wrong")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
