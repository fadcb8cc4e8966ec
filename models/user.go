// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered account. Password always holds the bcrypt hash and is
// never serialised. Token is nil while the user is logged out.
type User struct {
	// ID is the internal identifier assigned by the database.
	ID int64 `json:"-"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// Name is the display name.
	Name string `json:"name"`

	// Token is the opaque session token of the single active session.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// LoggedIn reports whether the user currently holds a session token.
func (u User) LoggedIn() bool {
	return u.Token != nil && *u.Token != ""
}

// RegisterRequest is the body of POST /api/users. Passwords are limited to
// the 72 bytes bcrypt accepts.
type RegisterRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,maxbytes=72"`
	Name     string `json:"name" validate:"notblank,max=100"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,max=100"`
}

// UpdateUserRequest is the body of PATCH /api/users/current.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Password *string `json:"password,omitempty" validate:"omitnil,min=6,maxbytes=72"`
	Name     *string `json:"name,omitempty" validate:"omitnil,notblank,max=100"`
}

// UserUpdate is a partial update of a stored user. Only non-nil fields are
// written.
type UserUpdate struct {
	ID       int64
	Password *string
	Name     *string
}

// UserResponse is the public representation of a user. Token is only filled
// in by the login endpoint.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// NewUserResponse converts u into its public representation.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
	}
}
