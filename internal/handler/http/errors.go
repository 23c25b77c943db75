// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrUnsupportedContentType is returned when the sign-in body is neither
// JSON nor a form.
var ErrUnsupportedContentType = errors.New("unsupported content type")
