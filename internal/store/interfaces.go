package store

import (
	"context"
	"io"

	"github.com/MKhiriev/sheetcharts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated id and
	// creation time. A taken e-mail yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (models.User, error)
	// LinkGoogleID attaches a Google account to an existing user.
	LinkGoogleID(ctx context.Context, userID int64, googleID string) error
}

// HistoryRepository persists upload history records.
type HistoryRepository interface {
	CreateHistory(ctx context.Context, history models.History) (models.History, error)
	// GetHistory returns the record only when it belongs to userID.
	GetHistory(ctx context.Context, historyID, userID int64) (models.History, error)
	// ListHistories returns userID's records, newest upload first.
	ListHistories(ctx context.Context, userID int64) ([]models.History, error)
	// DeleteHistory removes the record owned by userID and returns it so the
	// caller can remove the stored file.
	DeleteHistory(ctx context.Context, historyID, userID int64) (models.History, error)
	// ReferencedStoredNames returns the subset of names that some history
	// record still points at.
	ReferencedStoredNames(ctx context.Context, names []string) (map[string]struct{}, error)
}

// AnalysisRepository persists saved analyses.
type AnalysisRepository interface {
	CreateAnalysis(ctx context.Context, analysis models.Analysis) (models.Analysis, error)
	// GetAnalysis returns the analysis owned by userID with its history
	// reference populated when the history still exists.
	GetAnalysis(ctx context.Context, analysisID, userID int64) (models.Analysis, error)
	// ListAnalyses returns userID's analyses, newest first, with populated
	// history references.
	ListAnalyses(ctx context.Context, userID int64) ([]models.Analysis, error)
	RenameAnalysis(ctx context.Context, analysisID, userID int64, name string) (models.Analysis, error)
	DeleteAnalysis(ctx context.Context, analysisID, userID int64) error
}

// FileStorage keeps uploaded spreadsheets under generated names.
type FileStorage interface {
	// Save writes r under name and returns the number of bytes written.
	Save(ctx context.Context, name string, r io.Reader) (int64, error)
	Open(ctx context.Context, name string) (io.ReadSeekCloser, error)
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) ([]models.StoredFile, error)
}

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
