package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactService struct {
	contactRepository store.ContactRepository

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		logger:            logger,
	}
}

func (s *contactService) CreateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	contact.UserID = userID

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.CreateContact").Int64("user_id", userID).Msg("error creating contact")
		return models.Contact{}, fmt.Errorf("error creating contact: %w", err)
	}

	return created, nil
}

func (s *contactService) GetContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	contact, err := s.contactRepository.FindContact(ctx, userID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error getting contact: %w", err)
	}

	return contact, nil
}

// UpdateContact replaces every field of an existing contact owned by userID.
func (s *contactService) UpdateContact(ctx context.Context, userID int64, contact models.Contact) (models.Contact, error) {
	contact.UserID = userID

	updated, err := s.contactRepository.UpdateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error updating contact: %w", err)
	}

	return updated, nil
}

func (s *contactService) DeleteContact(ctx context.Context, userID, contactID int64) error {
	if err := s.contactRepository.DeleteContact(ctx, userID, contactID); err != nil {
		return fmt.Errorf("error deleting contact: %w", err)
	}

	return nil
}

// SearchContacts returns the requested page of the owner's contacts together
// with the total number of matches.
func (s *contactService) SearchContacts(ctx context.Context, search models.ContactSearch) (models.ContactPage, error) {
	contacts, total, err := s.contactRepository.SearchContacts(ctx, search)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.SearchContacts").Int64("user_id", search.UserID).Msg("error searching contacts")
		return models.ContactPage{}, fmt.Errorf("error searching contacts: %w", err)
	}

	return models.ContactPage{
		Contacts: contacts,
		Page:     search.Page,
		Size:     search.Size,
		Total:    total,
	}, nil
}
