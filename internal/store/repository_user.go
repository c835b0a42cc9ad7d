package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - unique_violation on the e-mail → [ErrEmailAlreadyExists];
//   - unique_violation on the Google id → [ErrGoogleAccountAlreadyLinked];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	googleID := sql.NullString{String: user.GoogleID, Valid: user.GoogleID != ""}
	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, string(user.Role), googleID)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.insertError(err)
	}

	// scan generated fields
	if err := row.Scan(&user.UserID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		if isUniqueViolation(err) {
			return models.User{}, r.insertError(err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.Password = ""
	return user, nil
}

func (r *userRepository) insertError(err error) error {
	if isUniqueViolation(err) {
		if postgresConstraint(err) == usersEmailConstraint {
			return ErrEmailAlreadyExists
		}
		return ErrGoogleAccountAlreadyLinked
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) FindUserByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByGoogleID", findUserByGoogleID, googleID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var (
		user models.User
		role string
	)
	row := r.db.QueryRowContext(ctx, query, arg)
	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &role, &user.GoogleID, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.Role = models.Role(role)
	return user, nil
}

// LinkGoogleID stores googleID on the user. A Google account that is already
// linked elsewhere yields [ErrGoogleAccountAlreadyLinked].
func (r *userRepository) LinkGoogleID(ctx context.Context, userID int64, googleID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, linkGoogleID, googleID, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkGoogleID").Int64("user_id", userID).Msg("error linking google account")
		if isUniqueViolation(err) {
			return ErrGoogleAccountAlreadyLinked
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
