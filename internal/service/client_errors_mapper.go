// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/sheetcharts/internal/adapter"
	"github.com/MKhiriev/sheetcharts/internal/app"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgInvalidJSON, app.MsgNoFileUploaded:
			return ErrInvalidDataProvided
		case app.MsgOnlySpreadsheetsAllowed:
			return spreadsheet.ErrUnsupportedFileType
		case app.MsgParsingSpreadsheet:
			return ErrParsingSpreadsheet
		case app.MsgFileNameRequired:
			return ErrValidationNoFileName
		case app.MsgHistoryIDRequired:
			return ErrValidationNoHistoryID
		case app.MsgAxesRequired:
			return ErrValidationNoAxes
		case app.MsgNameRequired:
			return ErrValidationNoName
		case app.MsgUnsupportedChartType:
			return ErrValidationChartType
		case app.MsgUnsupportedExportFormat:
			return ErrValidationExportFormat
		case app.MsgUnknownColumns:
			return ErrValidationUnknownColumns
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		default:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrUnauthorizedAccessToDifferentUserData

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgHistoryNotFound:
			return store.ErrHistoryNotFound
		case app.MsgAnalysisNotFound:
			return store.ErrAnalysisNotFound
		case app.MsgNoStoredFile:
			return ErrNoStoredFile
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgGoogleAccountLinked:
			return store.ErrGoogleAccountAlreadyLinked
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrFileTooLarge

	case errors.Is(err, adapter.ErrNotImplemented):
		return ErrGoogleLoginDisabled

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrDatabaseUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
