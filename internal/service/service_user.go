package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// UpdateProfile applies the non-nil fields of req to user. The new password
// is hashed before it is stored. An empty request returns user unchanged.
func (s *userService) UpdateProfile(ctx context.Context, user models.User, req models.UpdateUserRequest) (models.User, error) {
	if req.Password == nil && req.Name == nil {
		return user, nil
	}

	log := logger.FromContext(ctx)
	update := models.UserUpdate{ID: user.ID, Name: req.Name}

	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateProfile").Int64("id", user.ID).Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		update.Password = &hashed
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Int64("id", user.ID).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}
