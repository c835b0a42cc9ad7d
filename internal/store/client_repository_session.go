package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
)

// sessionRepository is the SQLite-backed [SessionRepository]. The sessions
// table holds at most one row.
type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger, now: time.Now}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.ClientSession) error {
	log := logger.FromContext(ctx)

	if session.SavedAt.IsZero() {
		session.SavedAt = r.now().UTC()
	}

	_, err := r.DB.ExecContext(ctx, saveSession,
		session.ServerURL,
		session.Token,
		session.User.UserID,
		session.User.Email,
		session.User.Name,
		string(session.User.Role),
		session.SavedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.ClientSession, error) {
	var (
		session models.ClientSession
		role    string
	)
	err := r.DB.QueryRowContext(ctx, getSession).Scan(
		&session.ServerURL,
		&session.Token,
		&session.User.UserID,
		&session.User.Email,
		&session.User.Name,
		&role,
		&session.SavedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ClientSession{}, ErrSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.GetSession").Msg("failed to read session")
		return models.ClientSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	session.User.Role = models.Role(role)
	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
