// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-cred-auth server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, toasts or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording throughout
// the API.
package app

// Server response bodies.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgMissingInput is returned by registration when the e-mail or the
	// password is empty.
	MsgMissingInput = "Email and password are required"

	// MsgPasswordTooShort is returned by registration when the password is
	// shorter than the minimum length.
	MsgPasswordTooShort = "Password must be at least 6 characters"

	// MsgPasswordTooLong is returned by registration when the password
	// exceeds the hashing algorithm's input limit.
	MsgPasswordTooLong = "Password is too long"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the e-mail is already in use.
	MsgEmailAlreadyExists = "Email already in use"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgTooManyRequests is returned by the sign-in rate limiter.
	MsgTooManyRequests = "Too many requests, try again later"
)

// Client toasts.
const (
	MsgClientPasswordTooShort  = "Password must be at least 6 characters!"
	MsgClientRegistrationOK    = "Registration successful"
	MsgClientLoginFailed       = "Failed to login!"
	MsgClientLoginOK           = "Login successful!"
	MsgClientServerUnavailable = "Server is unavailable, check the address and try again"
	MsgClientSignedOut         = "Signed out"
	MsgClientSignOutFailed     = "Failed to sign out!"
)
