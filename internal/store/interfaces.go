package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their session tokens.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with its assigned ID.
	// Returns ErrUsernameAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns ErrUserNotFound when no user matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByToken returns ErrUserNotFound when no user holds token.
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	// UpdateToken stores token for the user; nil clears it.
	UpdateToken(ctx context.Context, userID int64, token *string) error
	// UpdateUser writes the non-nil fields of update and returns the stored user.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// ContactRepository persists contacts. Every method is scoped to the owner:
// a contact of another user is reported as ErrContactNotFound.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	FindContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error
	// SearchContacts returns one page of matching contacts and the total
	// number of matches.
	SearchContacts(ctx context.Context, search models.ContactSearch) ([]models.Contact, int64, error)
}
