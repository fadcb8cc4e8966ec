package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := createContactQuery(r.db.builder, contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *contactRepository) FindContact(ctx context.Context, userID, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := findContactQuery(r.db.builder, userID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.FindContact").Msg("error finding contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contact, nil
}

func (r *contactRepository) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateContactQuery(r.db.builder, contact)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error building query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error updating contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *contactRepository) DeleteContact(ctx context.Context, userID, contactID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteContactQuery(r.db.builder, userID, contactID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts counts all matches first and then loads the requested page
// ordered by id.
func (r *contactRepository) SearchContacts(ctx context.Context, search models.ContactSearch) ([]models.Contact, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := countContactsQuery(r.db.builder, search)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error counting contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	contacts := make([]models.Contact, 0, search.Size)
	if total == 0 {
		return contacts, 0, nil
	}

	query, args, err := searchContactsQuery(r.db.builder, search)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error building search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error searching contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*contactRepository.SearchContacts").Msg("error scanning contact")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*contactRepository.SearchContacts").Msg("error iterating contacts")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var (
		contact                models.Contact
		lastName, email, phone sql.NullString
	)
	if err := row.Scan(&contact.ID, &contact.UserID, &contact.FirstName, &lastName, &email, &phone); err != nil {
		return models.Contact{}, err
	}

	contact.LastName = nullString(lastName)
	contact.Email = nullString(email)
	contact.Phone = nullString(phone)

	return contact, nil
}
