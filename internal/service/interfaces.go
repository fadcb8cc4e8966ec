package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,UserServiceWrapper,ContactServiceWrapper

// AuthService issues, verifies and invalidates opaque access tokens.
type AuthService interface {
	// Register creates a logged-out account.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login checks the credentials and replaces the user's token with a new
	// one. The returned user carries the new token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// Authenticate resolves the user holding token, or ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (models.User, error)
	// Logout clears the user's token.
	Logout(ctx context.Context, user models.User) error
}

// UserService manages the profile of the authenticated user.
type UserService interface {
	UpdateProfile(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error)
}

// ContactService manages the contacts of a single owner. A contact that does
// not belong to userID is reported as not found.
type ContactService interface {
	CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error)
	GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) error
	SearchContacts(ctx context.Context, search models.ContactSearch) (models.ContactPage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns utils.ErrPasswordMismatch for a wrong password.
	Compare(hashed, password string) error
}

// TokenGenerator produces new random access tokens.
type TokenGenerator interface {
	Generate() string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ContactServiceWrapper defines middleware composition for ContactService.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}
