// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is an address-book entry owned by exactly one user.
// Optional columns are nil when not set.
type Contact struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"-"`
	FirstName string  `json:"first_name" validate:"notblank,max=100"`
	LastName  *string `json:"last_name" validate:"omitnil,max=100"`
	Email     *string `json:"email" validate:"omitnil,email,max=200"`
	Phone     *string `json:"phone" validate:"omitnil,max=20"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// Default paging values for contact search.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ContactSearch holds the filters of GET /api/contacts. Filters are
// case-insensitive substring matches; Name matches either first or last name.
type ContactSearch struct {
	UserID int64
	Name   string
	Email  string
	Phone  string
	Page   int `validate:"min=1"`
	Size   int `validate:"min=1,max=100"`
}

// Offset returns the number of rows to skip for the requested page.
func (s ContactSearch) Offset() int {
	if s.Page < 1 {
		return 0
	}
	return (s.Page - 1) * s.Size
}

// ContactPage is a single page of search results.
type ContactPage struct {
	Contacts []Contact
	Page     int
	Size     int
	Total    int64
}

// LastPage returns the number of the last page, never less than 1.
func (p ContactPage) LastPage() int {
	if p.Size <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}
