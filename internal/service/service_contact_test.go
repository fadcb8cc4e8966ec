package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestContactService(t *testing.T) (ContactService, *mock.MockContactRepository) {
	t.Helper()
	repo := mock.NewMockContactRepository(gomock.NewController(t))
	return NewContactService(repo, logger.Nop()), repo
}

func TestContactService_CreateContact_SetsOwner(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestContactService(t)

	repo.EXPECT().
		CreateContact(ctx, models.Contact{UserID: 5, FirstName: "Eko"}).
		Return(models.Contact{ID: 1, UserID: 5, FirstName: "Eko"}, nil)

	contact, err := svc.CreateContact(ctx, 5, models.Contact{UserID: 99, FirstName: "Eko"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), contact.ID)
}

func TestContactService_GetContact_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestContactService(t)

	repo.EXPECT().FindContact(ctx, int64(5), int64(1)).Return(models.Contact{}, store.ErrContactNotFound)

	_, err := svc.GetContact(ctx, 5, 1)

	assert.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestContactService_UpdateContact_SetsOwner(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestContactService(t)

	repo.EXPECT().
		UpdateContact(ctx, models.Contact{ID: 1, UserID: 5, FirstName: "Budi"}).
		Return(models.Contact{ID: 1, UserID: 5, FirstName: "Budi"}, nil)

	contact, err := svc.UpdateContact(ctx, 5, models.Contact{ID: 1, FirstName: "Budi"})

	require.NoError(t, err)
	assert.Equal(t, "Budi", contact.FirstName)
}

func TestContactService_DeleteContact(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestContactService(t)

	gomock.InOrder(
		repo.EXPECT().DeleteContact(ctx, int64(5), int64(1)).Return(nil),
		repo.EXPECT().DeleteContact(ctx, int64(5), int64(1)).Return(store.ErrContactNotFound),
	)

	assert.NoError(t, svc.DeleteContact(ctx, 5, 1))
	assert.ErrorIs(t, svc.DeleteContact(ctx, 5, 1), store.ErrContactNotFound)
}

func TestContactService_SearchContacts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestContactService(t)
	search := models.ContactSearch{UserID: 5, Name: "eko", Page: 2, Size: 1}
	found := []models.Contact{{ID: 2, UserID: 5, FirstName: "Eko"}}

	repo.EXPECT().SearchContacts(ctx, search).Return(found, int64(3), nil)

	page, err := svc.SearchContacts(ctx, search)

	require.NoError(t, err)
	assert.Equal(t, found, page.Contacts)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 1, page.Size)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 3, page.LastPage())
}
