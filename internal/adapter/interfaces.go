// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for communicating with
// the contact keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// wraps one of the sentinel errors in errors.go, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401) and
// still read the per-field messages returned by the server.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the contact
// keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the token attached to all subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if no token has been set yet.
	Token() string

	// Register creates a new account. The account starts logged out.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)

	// Login authenticates the user and stores the issued token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error)

	// Current returns the profile of the authenticated user.
	Current(ctx context.Context) (models.UserResponse, error)

	// UpdateProfile changes the name and/or password of the authenticated
	// user.
	UpdateProfile(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)

	// Logout invalidates the stored token on the server and forgets it
	// locally.
	Logout(ctx context.Context) error

	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContact(ctx context.Context, id int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error

	// SearchContacts returns one page of the caller's contacts matching the
	// non-empty filters of search. Zero Page or Size leave the server
	// defaults in place.
	SearchContacts(ctx context.Context, search models.ContactSearch) ([]models.Contact, models.PageMeta, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
