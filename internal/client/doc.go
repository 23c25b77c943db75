// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It hands the process lifecycle to the terminal UI and turns user exits and
// termination signals into a clean shutdown.
package client
