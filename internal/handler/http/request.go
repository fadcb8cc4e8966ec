package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// decodeBody decodes the JSON request body into dst. An empty body leaves dst
// untouched so the validation layer reports the missing fields.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// queryInt reads a positive integer query parameter. A missing parameter
// yields def; a malformed one yields 0 and is rejected by validation.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
