package service

import (
	"context"
	"io"

	"github.com/MKhiriev/sheetcharts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users and manages bearer tokens.
type AuthService interface {
	// Register creates an account from a name, e-mail and password. Accounts
	// whose e-mail is on the configured admin list receive the admin role.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login verifies e-mail and password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// GoogleLogin exchanges a Google ID token for a local account, creating
	// or linking one by e-mail when needed.
	GoogleLogin(ctx context.Context, req models.GoogleLoginRequest) (models.User, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// GoogleVerifier validates Google ID tokens issued for this application.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (models.GoogleIdentity, error)
}

// UploadService accepts spreadsheets and serves them back.
type UploadService interface {
	// Upload validates the extension, stores the file, parses it and records
	// a History entry for the uploader.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)
	// Download opens the stored file behind a History record owned by userID.
	Download(ctx context.Context, historyID, userID int64) (models.History, io.ReadSeekCloser, error)
}

// HistoryService manages upload history records.
type HistoryService interface {
	// Save records history metadata without a stored file.
	Save(ctx context.Context, session models.Session, req models.SaveHistoryRequest) (models.History, error)
	// List returns ownerID's records, newest first. Only the owner and admins
	// may list.
	List(ctx context.Context, session models.Session, ownerID int64) ([]models.History, error)
	// Delete removes the record and its stored file.
	Delete(ctx context.Context, historyID, userID int64) error
	// Dataset re-parses the stored file and derives the chart dataset.
	Dataset(ctx context.Context, req models.DatasetRequest) (models.DatasetResponse, error)
}

// AnalysisService manages saved chart configurations.
type AnalysisService interface {
	Create(ctx context.Context, req models.SaveAnalysisRequest) (models.Analysis, error)
	List(ctx context.Context, userID int64) ([]models.Analysis, error)
	Rename(ctx context.Context, analysisID, userID int64, name string) (models.Analysis, error)
	Delete(ctx context.Context, analysisID, userID int64) error
	// Export renders the saved chart from the referenced upload.
	Export(ctx context.Context, req models.ExportRequest) (models.Export, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// HealthService reports whether the server dependencies are reachable.
type HealthService interface {
	Check(ctx context.Context) error
}
