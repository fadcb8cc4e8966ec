package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
)

// contactID parses the {id} path parameter. Anything but a positive integer
// is answered with 404.
func contactID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		notFound(w, r)
		return 0, false
	}
	return id, true
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	var contact models.Contact
	if err := decodeBody(r, &contact); err != nil {
		writeError(w, r, err)
		return
	}
	contact.ID = 0

	created, err := h.services.ContactService.CreateContact(r.Context(), userID, contact)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: created}, http.StatusCreated)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	contact, err := h.services.ContactService.GetContact(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: contact}, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var contact models.Contact
	if err := decodeBody(r, &contact); err != nil {
		writeError(w, r, err)
		return
	}
	contact.ID = id

	updated, err := h.services.ContactService.UpdateContact(r.Context(), userID, contact)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: updated}, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	if err := h.services.ContactService.DeleteContact(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Data: true}, http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized)
		return
	}

	query := r.URL.Query()
	search := models.ContactSearch{
		UserID: userID,
		Name:   query.Get("name"),
		Email:  query.Get("email"),
		Phone:  query.Get("phone"),
		Page:   queryInt(r, "page", models.DefaultPage),
		Size:   queryInt(r, "size", models.DefaultPageSize),
	}

	page, err := h.services.ContactService.SearchContacts(r.Context(), search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contacts := page.Contacts
	if contacts == nil {
		contacts = []models.Contact{}
	}

	utils.WriteJSON(w, models.PagedResponse{
		Data: contacts,
		Meta: models.PageMeta{
			Page:     page.Page,
			Size:     page.Size,
			Total:    page.Total,
			LastPage: page.LastPage(),
		},
	}, http.StatusOK)
}
