// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sheetcharts command-line application.
//
// Each sub-command is a thin cobra wrapper around the client services: the
// session is loaded from the local SQLite store and handed to the service
// explicitly, results are printed as plain text tables.
package client
