package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		respErr.Errors = body.Errors
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.err = ErrUnauthorized
	case http.StatusNotFound:
		respErr.err = ErrNotFound
	case http.StatusTooManyRequests:
		respErr.err = ErrTooManyRequests
	case http.StatusInternalServerError:
		respErr.err = ErrInternalServerError
	default:
		respErr.err = fmt.Errorf("%w: http %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	return respErr
}
