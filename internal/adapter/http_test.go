// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "  https://api.example.com  ", want: "https://api.example.com"},
		{raw: "", wantErr: ErrEmptyAddress},
		{raw: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeJSON(w, http.StatusCreated, models.DataResponse{Data: models.UserResponse{Username: "alice", Name: "Alice"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "secret", Name: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, models.UserResponse{Username: "alice", Name: "Alice"}, got)
	assert.Empty(t, a.Token())
}

func TestRegister_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Errors: map[string][]string{
			"username": {"username already registered"},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.ErrorIs(t, err, ErrBadRequest)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusBadRequest, respErr.StatusCode)
	assert.Equal(t, []string{"username already registered"}, respErr.Errors["username"])
	assert.Equal(t, "bad request (username: username already registered)", err.Error())
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		writeJSON(w, http.StatusOK, models.DataResponse{Data: models.UserResponse{Username: "alice", Name: "Alice", Token: "tok-1"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, "tok-1", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.NewMessageError("username or password wrong"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestAuthenticatedRequests_SendToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		switch r.Method + " " + r.URL.Path {
		case "GET /api/users/current":
			writeJSON(w, http.StatusOK, models.DataResponse{Data: models.UserResponse{Username: "alice", Name: "Alice"}})
		case "PATCH /api/users/current":
			writeJSON(w, http.StatusOK, models.DataResponse{Data: models.UserResponse{Username: "alice", Name: "Al"}})
		case "DELETE /api/users/logout":
			writeJSON(w, http.StatusOK, models.DataResponse{Data: true})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok-1 ")
	ctx := context.Background()

	current, err := a.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", current.Name)

	name := "Al"
	updated, err := a.UpdateProfile(ctx, models.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Al", updated.Name)

	require.NoError(t, a.Logout(ctx))
	assert.Empty(t, a.Token())
}

func TestContacts(t *testing.T) {
	email := "eko@example.com"
	contact := models.Contact{ID: 7, FirstName: "Eko", Email: &email}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/contacts":
			writeJSON(w, http.StatusCreated, models.DataResponse{Data: contact})
		case "GET /api/contacts/7":
			writeJSON(w, http.StatusOK, models.DataResponse{Data: contact})
		case "PUT /api/contacts/7":
			var body models.Contact
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(w, http.StatusOK, models.DataResponse{Data: models.Contact{ID: 7, FirstName: body.FirstName}})
		case "DELETE /api/contacts/7":
			writeJSON(w, http.StatusOK, models.DataResponse{Data: true})
		case "GET /api/contacts/8", "DELETE /api/contacts/8":
			writeJSON(w, http.StatusNotFound, models.NewMessageError("not found"))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	created, err := a.CreateContact(ctx, models.Contact{FirstName: "Eko", Email: &email})
	require.NoError(t, err)
	assert.Equal(t, contact, created)

	got, err := a.GetContact(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, contact, got)

	updated, err := a.UpdateContact(ctx, models.Contact{ID: 7, FirstName: "Budi"})
	require.NoError(t, err)
	assert.Equal(t, "Budi", updated.FirstName)
	assert.Nil(t, updated.Email)

	require.NoError(t, a.DeleteContact(ctx, 7))

	_, err = a.GetContact(ctx, 8)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, a.DeleteContact(ctx, 8), ErrNotFound)
}

func TestSearchContacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacts", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "eko", q.Get("name"))
		assert.Equal(t, "2", q.Get("page"))
		assert.False(t, q.Has("email"))
		assert.False(t, q.Has("size"))

		writeJSON(w, http.StatusOK, models.PagedResponse{
			Data: []models.Contact{{ID: 1, FirstName: "Eko"}},
			Meta: models.PageMeta{Page: 2, Size: 10, Total: 11, LastPage: 2},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	contacts, meta, err := a.SearchContacts(context.Background(), models.ContactSearch{Name: "eko", Page: 2})

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Eko", contacts[0].FirstName)
	assert.Equal(t, models.PageMeta{Page: 2, Size: 10, Total: 11, LastPage: 2}, meta)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(context.Background())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
