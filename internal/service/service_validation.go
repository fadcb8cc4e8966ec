package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// AuthValidationService normalizes and validates credentials before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Username = validators.Trim(req.Username)
	req.Name = validators.Trim(req.Name)

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating registration: %w", err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Username = validators.Trim(req.Username)

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating login: %w", err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, token string) (models.User, error) {
	return v.inner.Authenticate(ctx, token)
}

func (v *AuthValidationService) Logout(ctx context.Context, user models.User) error {
	return v.inner.Logout(ctx, user)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService validates profile updates. Passwords are never
// trimmed.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	req.Name = validators.TrimPresent(req.Name)

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating profile update: %w", err)
	}

	return v.inner.UpdateProfile(ctx, user, req)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

// ContactValidationService normalizes and validates contacts and search
// parameters. Empty optional fields are turned into nil.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService(validator validators.Validator) ContactServiceWrapper {
	return &ContactValidationService{validator: validator}
}

func (v *ContactValidationService) CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	contact = normalizeContact(contact)

	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("error validating contact: %w", err)
	}

	return v.inner.CreateContact(ctx, userID, contact)
}

func (v *ContactValidationService) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	return v.inner.GetContact(ctx, userID, contactID)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	contact = normalizeContact(contact)

	if err := v.validator.Validate(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("error validating contact: %w", err)
	}

	return v.inner.UpdateContact(ctx, userID, contact)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, userID, contactID int64) error {
	return v.inner.DeleteContact(ctx, userID, contactID)
}

func (v *ContactValidationService) SearchContacts(ctx context.Context, search models.ContactSearch) (models.ContactPage, error) {
	search.Name = validators.Trim(search.Name)
	search.Email = validators.Trim(search.Email)
	search.Phone = validators.Trim(search.Phone)

	if err := v.validator.Validate(ctx, search); err != nil {
		return models.ContactPage{}, fmt.Errorf("error validating contact search: %w", err)
	}

	return v.inner.SearchContacts(ctx, search)
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}

func normalizeContact(contact models.Contact) models.Contact {
	contact.FirstName = validators.Trim(contact.FirstName)
	contact.LastName = validators.TrimOptional(contact.LastName)
	contact.Email = validators.TrimOptional(contact.Email)
	contact.Phone = validators.TrimOptional(contact.Phone)
	return contact
}
