// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-auth/internal/adapter"
)

// mapAdapterError translates an adapter error into a client service error.
// Transport failures become ErrServerUnavailable; server rejections are
// wrapped with op while keeping the adapter error reachable for
// ServerMessage.
func mapAdapterError(err error, op error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrServerUnavailable) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}

// ServerMessage returns the text the server sent with a rejected request,
// falling back to err's own message when the server sent nothing.
func ServerMessage(err error) string {
	if err == nil {
		return ""
	}
	if body := adapter.ResponseBody(err); body != "" {
		return body
	}

	return err.Error()
}
