package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users  *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
	tokens *mock.MockTokenGenerator
}

func newTestAuthService(t *testing.T) (AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		users:  mock.NewMockUserRepository(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
		tokens: mock.NewMockTokenGenerator(ctrl),
	}
	return NewAuthService(m.users, m.hasher, m.tokens, logger.Nop()), m
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	req := models.RegisterRequest{Username: "john", Password: "rahasia", Name: "John"}

	t.Run("stores hashed password", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		gomock.InOrder(
			m.hasher.EXPECT().Hash("rahasia").Return("$2a$hash", nil),
			m.users.EXPECT().
				CreateUser(ctx, models.User{Username: "john", Password: "$2a$hash", Name: "John"}).
				Return(models.User{ID: 1, Username: "john", Password: "$2a$hash", Name: "John"}, nil),
		)

		user, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Nil(t, user.Token)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
		m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

		_, err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	})

	t.Run("hash failure", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		hashErr := errors.New("boom")

		m.hasher.EXPECT().Hash(gomock.Any()).Return("", hashErr)

		_, err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, hashErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	req := models.LoginRequest{Username: "john", Password: "rahasia"}
	stored := models.User{ID: 7, Username: "john", Password: "$2a$hash", Name: "John"}

	t.Run("issues new token", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		gomock.InOrder(
			m.users.EXPECT().FindUserByUsername(ctx, "john").Return(stored, nil),
			m.hasher.EXPECT().Compare("$2a$hash", "rahasia").Return(nil),
			m.tokens.EXPECT().Generate().Return("token-1"),
			m.users.EXPECT().UpdateToken(ctx, int64(7), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, token *string) error {
					require.NotNil(t, token)
					assert.Equal(t, "token-1", *token)
					return nil
				}),
		)

		user, err := svc.Login(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, user.Token)
		assert.Equal(t, "token-1", *user.Token)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.EXPECT().FindUserByUsername(ctx, "john").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.EXPECT().FindUserByUsername(ctx, "john").Return(stored, nil)
		m.hasher.EXPECT().Compare("$2a$hash", "rahasia").Return(utils.ErrPasswordMismatch)

		_, err := svc.Login(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		dbErr := errors.New("connection reset")

		m.users.EXPECT().FindUserByUsername(ctx, "john").Return(stored, nil)
		m.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
		m.tokens.EXPECT().Generate().Return("token-1")
		m.users.EXPECT().UpdateToken(ctx, int64(7), gomock.Any()).Return(dbErr)

		_, err := svc.Login(ctx, req)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Authenticate(ctx, "")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.EXPECT().FindUserByToken(ctx, "nope").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Authenticate(ctx, "nope")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("known token", func(t *testing.T) {
		svc, m := newTestAuthService(t)
		token := "token-1"

		m.users.EXPECT().FindUserByToken(ctx, token).Return(models.User{ID: 7, Username: "john", Token: &token}, nil)

		user, err := svc.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears token", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.EXPECT().UpdateToken(ctx, int64(7), (*string)(nil)).Return(nil)

		assert.NoError(t, svc.Logout(ctx, models.User{ID: 7}))
	})

	t.Run("user gone", func(t *testing.T) {
		svc, m := newTestAuthService(t)

		m.users.EXPECT().UpdateToken(ctx, int64(7), gomock.Nil()).Return(store.ErrUserNotFound)

		assert.ErrorIs(t, svc.Logout(ctx, models.User{ID: 7}), ErrUnauthorized)
	})
}
