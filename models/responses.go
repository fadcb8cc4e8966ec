// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DataResponse wraps every successful response body.
type DataResponse struct {
	Data any `json:"data"`
}

// PageMeta describes the page returned by a paginated endpoint.
type PageMeta struct {
	Page     int   `json:"page"`
	Size     int   `json:"size"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// PagedResponse wraps a paginated list.
type PagedResponse struct {
	Data any      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// ErrorResponse wraps every error body. Errors maps a field name (or
// "message" for errors not tied to a field) to its ordered messages.
type ErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// NewMessageError builds an ErrorResponse carrying a single general message.
func NewMessageError(message string) ErrorResponse {
	return ErrorResponse{Errors: map[string][]string{"message": {message}}}
}
