package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/sheetcharts/internal/adapter"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.ClientSession, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.DisplayName() == "" || req.Email == "" || req.Password == "" {
		return models.ClientSession{}, ErrInvalidDataProvided
	}

	auth, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, auth)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.ClientSession, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return models.ClientSession{}, ErrInvalidDataProvided
	}

	auth, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, auth)
}

func (a *clientAuthService) persist(ctx context.Context, auth models.AuthResponse) (models.ClientSession, error) {
	session := models.ClientSession{
		ServerURL: a.adapter.BaseURL(),
		Token:     auth.Token,
	}
	if auth.User != nil {
		session.User = *auth.User
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.ClientSession{}, fmt.Errorf("save local session: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "clientAuthService.persist").
		Int64("user_id", session.User.UserID).
		Msg("session saved")

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete local session: %w", err)
	}
	a.adapter.SetToken("")
	return nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.ClientSession, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.ClientSession{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.ClientSession{}, fmt.Errorf("load local session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Whoami(ctx context.Context, session models.ClientSession) (models.User, error) {
	if err := useSession(a.adapter, session); err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Profile(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return user, nil
}

// useSession points the adapter at session's token. A session saved against
// another server is refused rather than leaking its token.
func useSession(serverAdapter adapter.ServerAdapter, session models.ClientSession) error {
	if session.Token == "" {
		return ErrNotLoggedIn
	}
	if session.ServerURL != "" && session.ServerURL != serverAdapter.BaseURL() {
		return fmt.Errorf("%w: %s", ErrSessionForOtherServer, session.ServerURL)
	}

	serverAdapter.SetToken(session.Token)
	return nil
}
