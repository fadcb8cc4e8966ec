package service

import (
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ContactService ContactService
	AppInfoService AppInfoService
}

// NewServices wires the domain services on top of storages. Every service
// that accepts client input is wrapped by its validation layer.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := utils.NewBcryptHasher(cfg.BcryptCost)
	validator := validators.NewStructValidator()

	authService := NewAuthService(storages.UserRepository, hasher, utils.NewUUIDGenerator(), logger)
	userService := NewUserService(storages.UserRepository, hasher, logger)
	contactService := NewContactService(storages.ContactRepository, logger)

	return &Services{
		AuthService:    NewAuthValidationService(validator).Wrap(authService),
		UserService:    NewUserValidationService(validator).Wrap(userService),
		ContactService: NewContactValidationService(validator).Wrap(contactService),
		AppInfoService: appInfoService,
	}, nil
}
