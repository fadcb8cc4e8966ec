package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/users.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.do(h.request(ctx), "register", resty.MethodPost, "/api/users", req, &user); err != nil {
		return models.UserResponse{}, err
	}
	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/users/login and stores the token returned in the body.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.do(h.request(ctx), "login", resty.MethodPost, "/api/users/login", req, &user); err != nil {
		return models.UserResponse{}, err
	}

	h.SetToken(user.Token)
	h.logger.Debug().Str("username", user.Username).Msg("logged in")
	return user, nil
}

func (h *httpServerAdapter) Current(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.do(h.authedRequest(ctx), "current user", resty.MethodGet, "/api/users/current", nil, &user); err != nil {
		return models.UserResponse{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.do(h.authedRequest(ctx), "update profile", resty.MethodPatch, "/api/users/current", req, &user); err != nil {
		return models.UserResponse{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	var ok bool
	if err := h.do(h.authedRequest(ctx), "logout", resty.MethodDelete, "/api/users/logout", nil, &ok); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var created models.Contact
	if err := h.do(h.authedRequest(ctx), "create contact", resty.MethodPost, "/api/contacts", contact, &created); err != nil {
		return models.Contact{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	var contact models.Contact
	if err := h.do(h.authedRequest(ctx), "get contact", resty.MethodGet, contactPath(id), nil, &contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (h *httpServerAdapter) UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	var updated models.Contact
	if err := h.do(h.authedRequest(ctx), "update contact", resty.MethodPut, contactPath(contact.ID), contact, &updated); err != nil {
		return models.Contact{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteContact(ctx context.Context, id int64) error {
	var ok bool
	return h.do(h.authedRequest(ctx), "delete contact", resty.MethodDelete, contactPath(id), nil, &ok)
}

func (h *httpServerAdapter) SearchContacts(ctx context.Context, search models.ContactSearch) ([]models.Contact, models.PageMeta, error) {
	params := map[string]string{}
	for name, value := range map[string]string{"name": search.Name, "email": search.Email, "phone": search.Phone} {
		if value != "" {
			params[name] = value
		}
	}
	if search.Page > 0 {
		params["page"] = strconv.Itoa(search.Page)
	}
	if search.Size > 0 {
		params["size"] = strconv.Itoa(search.Size)
	}

	var contacts []models.Contact
	result := models.PagedResponse{Data: &contacts}

	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/api/contacts")
	if err != nil {
		return nil, models.PageMeta{}, fmt.Errorf("search contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, models.PageMeta{}, err
	}

	return contacts, result.Meta, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// do sends body (if any) and decodes the "data" member of a successful
// response into out.
func (h *httpServerAdapter) do(req *resty.Request, op, method, path string, body, out any) error {
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.SetResult(&models.DataResponse{Data: out}).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func contactPath(id int64) string {
	return "/api/contacts/" + strconv.FormatInt(id, 10)
}
