// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrAdminOnly is returned when a non-admin session reaches an admin route.
	ErrAdminOnly = errors.New("admin access required")
)

var (
	errInvalidID      = errors.New("invalid id")
	errNoFileUploaded = errors.New("no file uploaded")
	errFileTooLarge   = errors.New("file too large")
	errInvalidJSON    = errors.New("invalid JSON")
)
