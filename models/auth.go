// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Credentials is the email/password pair handed to the credential verifier.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials returns the email/password part of the registration request.
func (r RegisterRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// SignInResponse is the result of a credentials sign-in attempt.
//
// On failure Error holds an opaque code (see [SignInErrorCredentials]) and OK
// is false; the reason behind a rejected attempt is never exposed.
type SignInResponse struct {
	OK     bool   `json:"ok"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
	URL    string `json:"url,omitempty"`
}

// SignInErrorCredentials is the only error code a rejected credentials
// sign-in reports to clients.
const SignInErrorCredentials = "CredentialsSignin"

// Session describes the currently authenticated user as decoded from the
// session cookie. The zero value means "no session".
type Session struct {
	User    *PublicUser `json:"user,omitempty"`
	Expires *time.Time  `json:"expires,omitempty"`
}

// Authenticated reports whether s carries a user.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// MinPasswordLength is the shortest password accepted at registration and by
// the client form, counted in characters.
const MinPasswordLength = 6

// NormalizeEmail trims surrounding whitespace and lower-cases email so that
// lookups and the uniqueness constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
