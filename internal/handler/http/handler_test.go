package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "3f1c2a9e-6b1d-4d8e-9a57-0c1d2e3f4a5b"

type serviceMocks struct {
	auth     *mock.MockAuthService
	users    *mock.MockUserService
	contacts *mock.MockContactService
	appInfo  *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:     mock.NewMockAuthService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		contacts: mock.NewMockContactService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		ContactService: m.contacts,
		AppInfoService: m.appInfo,
	}
	h := NewHandler(services, ratelimit.Nop(), config.Server{}, logger.Nop())
	return h.Init(), m
}

// expectAuthenticated makes the auth middleware accept testToken as user.
func (m serviceMocks) expectAuthenticated(user models.User) {
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(user, nil)
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Errors
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	resp := struct {
		Data any `json:"data"`
	}{Data: dst}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
}
