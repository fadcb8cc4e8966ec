package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

const bearerScheme = "Bearer "

// auth is an HTTP middleware that enforces opaque-token authentication.
//
// It reads the token from the "Authorization" header, resolves the user
// holding it via [service.AuthService.Authenticate] and stores that user in
// the request context under [utils.UserCtxKey] before delegating to the next
// handler. The token is not rotated on use.
//
// A missing header, an empty token and a token nobody holds are all rejected
// with HTTP 401 and the same body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Send()
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		userLogger := log.With().Int64("user_id", user.ID).Logger()
		ctx = userLogger.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value. The raw value is the token; a leading "Bearer " scheme is
// accepted and stripped.
//
// It returns [ErrEmptyAuthorizationHeader] for a blank header and
// [ErrEmptyToken] when only the scheme is present.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	if len(authHeader) >= len(bearerScheme) && strings.EqualFold(authHeader[:len(bearerScheme)], bearerScheme) {
		authHeader = strings.TrimSpace(authHeader[len(bearerScheme):])
	} else if strings.EqualFold(authHeader, strings.TrimSpace(bearerScheme)) {
		authHeader = ""
	}

	if authHeader == "" {
		return "", ErrEmptyToken
	}

	return authHeader, nil
}
