// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers and
// the CLI's error mapping.
//
// Every error response body has the shape {"success": false, "message": Msg*}.
// The CLI adapter reads the message back to restore the typed error, so the
// wording here is part of the API.
package app

const (
	MsgInvalidJSON         = "invalid JSON was passed"
	MsgInvalidDataProvided = "invalid data provided"
	MsgInvalidID           = "invalid id"
	MsgInternalServerError = "internal server error"
	MsgServiceUnavailable  = "service unavailable"

	// auth
	MsgInvalidCredentials       = "invalid email or password"
	MsgEmailAlreadyExists       = "email already registered"
	MsgGoogleAccountLinked      = "google account already linked to another user"
	MsgGoogleLoginDisabled      = "google login is not configured"
	MsgInvalidGoogleToken       = "invalid google token"
	MsgEmptyAuthorizationHeader = "empty `Authorization` header"
	MsgInvalidAuthorization     = "invalid `Authorization` header"
	MsgTokenIsExpired           = "token is expired"
	MsgTokenIsExpiredOrInvalid  = "token is expired or invalid"
	MsgAccessDenied             = "access denied"
	MsgAdminOnly                = "admin access required"
	MsgUserNotFound             = "user not found"

	// uploads
	MsgUploadSucceeded         = "File uploaded and parsed successfully"
	MsgOnlySpreadsheetsAllowed = "Only .xls and .xlsx files are allowed"
	MsgNoFileUploaded          = "no file uploaded"
	MsgFileTooLarge            = "file too large"
	MsgParsingSpreadsheet      = "error parsing spreadsheet"
	MsgNoStoredFile            = "no stored file for this history record"

	// history and analyses
	MsgFileNameRequired        = "fileName is required"
	MsgHistoryIDRequired       = "historyId required"
	MsgAxesRequired            = "xAxis and yAxis are required"
	MsgNameRequired            = "name is required"
	MsgUnsupportedChartType    = "unsupported chart type"
	MsgUnsupportedExportFormat = "format must be png or pdf"
	MsgUnknownColumns          = "selected columns are not in the spreadsheet"
	MsgChartNotRenderable      = "chart cannot be rendered from this data"
	MsgHistoryNotFound         = "history not found"
	MsgAnalysisNotFound        = "analysis not found"
	MsgHistoryDeleted          = "history deleted"
	MsgAnalysisDeleted         = "analysis deleted"
)
