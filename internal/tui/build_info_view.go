// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/sheetcharts/models"
)

// RenderVersion renders the client build and, when reachable, the server's.
func RenderVersion(client models.AppBuildInfo, server *models.VersionResponse) string {
	var b strings.Builder

	b.WriteString("Client version: ")
	b.WriteString(valueOrNA(client.BuildVersion()))
	b.WriteString("\nClient build date: ")
	b.WriteString(valueOrNA(client.BuildDate()))
	b.WriteString("\nClient commit: ")
	b.WriteString(valueOrNA(client.BuildCommit()))

	b.WriteString("\n\nServer version: ")
	if server == nil {
		b.WriteString("unreachable")
	} else {
		b.WriteString(valueOrNA(server.Version))
		b.WriteString("\nServer build date: ")
		b.WriteString(valueOrNA(server.BuildDate))
		b.WriteString("\nServer commit: ")
		b.WriteString(valueOrNA(server.BuildCommit))
	}

	return renderPage("SHEETCHARTS", b.String(), "")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
