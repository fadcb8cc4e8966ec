package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.ID).Msg("user registered")
	utils.WriteJSON(w, models.DataResponse{Data: models.NewUserResponse(user)}, http.StatusCreated)
}

// login returns the issued token both in the body and in the
// "Authorization" response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.NewUserResponse(user)
	if user.Token != nil {
		resp.Token = *user.Token
	}

	logger.FromRequest(r).Debug().Int64("id", user.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", resp.Token)
	utils.WriteJSON(w, models.DataResponse{Data: resp}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: models.NewUserResponse(user)}, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	var req models.UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: models.NewUserResponse(updated)}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: true}, http.StatusOK)
}
