package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	utils.ErrInvalidJSON: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrContactNotFound:       http.StatusNotFound,
	store.ErrUserNotFound:          http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	service.ErrUnauthorized:       app.MsgUnauthorized,
	service.ErrInvalidCredentials: app.MsgInvalidLoginPassword,

	utils.ErrInvalidJSON: app.MsgInvalidJSON,

	store.ErrContactNotFound: app.MsgNotFound,
	store.ErrUserNotFound:    app.MsgNotFound,
}

func statusFromError(err error) int {
	var verr validators.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the body reported for err. Validation failures keep
// their per-field messages; a taken username is reported as a username
// validation error; everything unknown becomes a generic internal error.
func errorResponse(err error) models.ErrorResponse {
	var verr validators.ValidationErrors
	if errors.As(err, &verr) {
		return models.ErrorResponse{Errors: verr}
	}

	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.ErrorResponse{Errors: map[string][]string{
			"username": {app.MsgUsernameAlreadyExists},
		}}
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return models.NewMessageError(msg)
		}
	}
	return models.NewMessageError(app.MsgInternalServerError)
}

// writeError logs err and renders it as an error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse(err), status)
}

// notFound answers unknown routes and unsupported methods alike.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NewMessageError(app.MsgNotFound), http.StatusNotFound)
}
