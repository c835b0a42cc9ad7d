package service

import (
	"context"
	"io"

	"github.com/MKhiriev/sheetcharts/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the CLI login. The session it returns is what
// every other client service expects as an explicit argument; nothing is
// kept in process-wide state.
type ClientAuthService interface {
	// Register creates an account on the server and persists the resulting
	// session locally.
	Register(ctx context.Context, req models.RegisterRequest) (models.ClientSession, error)

	// Login authenticates against the server and persists the session.
	Login(ctx context.Context, req models.LoginRequest) (models.ClientSession, error)

	// Logout forgets the local session. It succeeds when nobody is logged in.
	Logout(ctx context.Context) error

	// Session loads the persisted session. Returns [ErrNotLoggedIn] when
	// there is none.
	Session(ctx context.Context) (models.ClientSession, error)

	// Whoami asks the server who the session's token belongs to.
	Whoami(ctx context.Context, session models.ClientSession) (models.User, error)
}

// ClientWorkspaceService talks to the server on behalf of a logged-in user:
// uploads, history and saved analyses.
type ClientWorkspaceService interface {
	// Upload checks the extension locally, before any network traffic, and
	// then sends the file at path to the server.
	Upload(ctx context.Context, session models.ClientSession, path string, axes models.Axes) (models.UploadResponse, error)

	ListHistory(ctx context.Context, session models.ClientSession) ([]models.History, error)
	DeleteHistory(ctx context.Context, session models.ClientSession, historyID int64) error

	// DownloadFile saves the original upload into dir and returns the path
	// it was written to.
	DownloadFile(ctx context.Context, session models.ClientSession, historyID int64, dir string) (string, error)

	Dataset(ctx context.Context, session models.ClientSession, historyID int64, xAxis, yAxis string) (models.DatasetResponse, error)

	SaveAnalysis(ctx context.Context, session models.ClientSession, req models.SaveAnalysisRequest) (models.Analysis, error)
	ListAnalyses(ctx context.Context, session models.ClientSession) ([]models.Analysis, error)
	RenameAnalysis(ctx context.Context, session models.ClientSession, analysisID int64, name string) (models.Analysis, error)
	DeleteAnalysis(ctx context.Context, session models.ClientSession, analysisID int64) error
	ExportAnalysis(ctx context.Context, session models.ClientSession, analysisID int64, format models.ExportFormat) (models.Export, error)
}

// ClientPreviewService is the offline half of the upload-and-visualize flow.
type ClientPreviewService interface {
	// Open validates the extension and parses the spreadsheet at path.
	Open(ctx context.Context, path string) (models.Table, error)

	// Dataset derives the chart series for the chosen axes.
	Dataset(table models.Table, axes models.Axes) (models.Dataset, error)

	// Render writes the chart in the requested format.
	Render(w io.Writer, format models.ExportFormat, axes models.Axes, dataset models.Dataset) error
}
