// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when handlers carry
// neither an HTTP nor a gRPC handler.
var errNoServersAreCreated = errors.New("no servers are created")
