package store

import (
	"context"

	"github.com/MKhiriev/sheetcharts/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the single CLI session in the local database.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.ClientSession) error
	// GetSession returns [ErrSessionNotFound] when nobody is logged in.
	GetSession(ctx context.Context) (models.ClientSession, error)
	DeleteSession(ctx context.Context) error
}
