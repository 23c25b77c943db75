// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a session token.
//
// The subject ("sub") holds the user ID; Email and Name are copied from the
// user record at sign-in so that the session endpoint does not need a store
// lookup.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Token wraps a JWT session token with convenience accessors.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be stored in a cookie.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded session claim set.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// Session converts the token claims into a [Session] value.
func (t *Token) Session() Session {
	user := &PublicUser{ID: t.UserID, Name: t.Claims.Name, Email: t.Claims.Email}

	session := Session{User: user}
	if t.Claims.ExpiresAt != nil {
		expires := t.Claims.ExpiresAt.Time.UTC()
		session.Expires = &expires
	}

	return session
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
