package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the opaque
// token lifecycle using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords on registration and verifies them on login.
	hasher PasswordHasher

	// tokens generates the random token issued on every login.
	tokens TokenGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, tokens TokenGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register hashes the password and persists a new, logged-out user.
//
// Returns the persisted user or a wrapped storage error
// (store.ErrUsernameAlreadyExists when the username is taken).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hashed, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Password: hashed,
		Name:     req.Name,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user and issues a new token, replacing
// any token issued before.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Login").Str("username", req.Username).Msg("unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(user.Password, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Str("func", "*authService.Login").Int64("id", user.ID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.ID).Msg("error comparing password")
		return models.User{}, fmt.Errorf("error comparing password: %w", err)
	}

	token := a.tokens.Generate()
	if err = a.userRepository.UpdateToken(ctx, user.ID, &token); err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.ID).Msg("error storing token")
		return models.User{}, fmt.Errorf("error storing token: %w", err)
	}
	user.Token = &token

	return user, nil
}

// Authenticate resolves the user currently holding token. Tokens are
// matched exactly and never expire.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}

// Logout clears the stored token of user.
func (a *authService) Logout(ctx context.Context, user models.User) error {
	err := a.userRepository.UpdateToken(ctx, user.ID, nil)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUnauthorized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Int64("id", user.ID).Msg("error clearing token")
		return fmt.Errorf("error clearing token: %w", err)
	}

	return nil
}
