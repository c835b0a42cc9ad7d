// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the CLI's transport to the sheetcharts server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships a REST implementation built on resty
// ([NewHTTPServerAdapter]). Non-2xx responses are mapped to the sentinel
// errors in errors.go so that callers can use [errors.Is] (e.g. [ErrConflict]
// for 409, [ErrUnauthorized] for 401); the server's message follows the
// sentinel in the error text.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/sheetcharts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sheetcharts
// server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// BaseURL returns the normalised server URL the adapter talks to.
	BaseURL() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with e-mail and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Profile returns the account that owns the current token.
	Profile(ctx context.Context) (models.User, error)

	// Upload sends a spreadsheet with the chosen axes as multipart form data.
	Upload(ctx context.Context, fileName string, content io.Reader, axes models.Axes) (models.UploadResponse, error)

	// ListHistory returns the caller's upload history, newest first.
	ListHistory(ctx context.Context) ([]models.History, error)

	DeleteHistory(ctx context.Context, historyID int64) error

	// DownloadFile streams the original upload of historyID into w and
	// returns the original file name.
	DownloadFile(ctx context.Context, historyID int64, w io.Writer) (string, error)

	// Dataset asks the server to derive the chart dataset of a stored upload.
	Dataset(ctx context.Context, historyID int64, xAxis, yAxis string) (models.DatasetResponse, error)

	CreateAnalysis(ctx context.Context, req models.SaveAnalysisRequest) (models.Analysis, error)
	ListAnalyses(ctx context.Context) ([]models.Analysis, error)
	RenameAnalysis(ctx context.Context, analysisID int64, name string) (models.Analysis, error)
	DeleteAnalysis(ctx context.Context, analysisID int64) error

	// ExportAnalysis downloads the server-rendered chart of a saved analysis.
	ExportAnalysis(ctx context.Context, analysisID int64, format models.ExportFormat) (models.Export, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
