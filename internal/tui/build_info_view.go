// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-cred-auth/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-cred-auth\n")
	b.WriteString("Version:     " + valueOrDash(info.Version) + "\n")
	b.WriteString("Date:        " + valueOrDash(info.Date) + "\n")
	b.WriteString("Commit:      " + valueOrDash(info.Commit))

	return renderPage("ABOUT", b.String(), "esc: back")
}
