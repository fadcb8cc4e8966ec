// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgUnauthorized is returned when a request carries no token or a token
	// that no user holds.
	MsgUnauthorized = "unauthorized"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "username or password wrong"

	// MsgNotFound is returned for unknown routes and for contacts that do not
	// exist or belong to another user.
	MsgNotFound = "not found"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON body"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUsernameAlreadyExists is reported under the username field when a
	// registration attempt reuses a taken username.
	MsgUsernameAlreadyExists = "username already registered"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"
)
