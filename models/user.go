// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique, normalised (trimmed, lower-cased) e-mail address
	// used as the login identifier.
	Email string `json:"email"`

	// HashedPassword is the bcrypt hash of the user's password.
	// nil means the account has no password-based login enabled (for example
	// it was created through another provider). Never serialised.
	HashedPassword *string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last change to the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account has a stored password hash.
func (u User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}

// PublicUser is the subset of [User] that may be returned to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips credential data from u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
