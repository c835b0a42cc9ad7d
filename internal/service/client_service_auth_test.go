package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sheetcharts/internal/adapter"
	"github.com/MKhiriev/sheetcharts/internal/app"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/mock"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
)

const testServerURL = "http://localhost:8080"

func newTestClientAuth(t *testing.T) (ClientAuthService, *mock.MockSessionRepository, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionRepository(ctrl)
	srv := mock.NewMockServerAdapter(ctrl)
	return NewClientAuthService(sessions, srv, logger.Nop()), sessions, srv
}

// ── Login / Register ────────────────────────────────────────────────────────

func TestClientAuthService_Login_PersistsSession(t *testing.T) {
	svc, sessions, srv := newTestClientAuth(t)
	user := &models.User{UserID: 7, Email: "ann@example.com", Role: models.RoleUser}

	gomock.InOrder(
		srv.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "pw"}).
			Return(models.AuthResponse{Token: "tok", User: user}, nil),
		srv.EXPECT().BaseURL().Return(testServerURL),
		sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.ClientSession) error {
				assert.Equal(t, testServerURL, s.ServerURL)
				assert.Equal(t, "tok", s.Token)
				assert.Equal(t, int64(7), s.User.UserID)
				return nil
			}),
	)

	got, err := svc.Login(context.Background(), models.LoginRequest{Email: " ann@example.com ", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, srv := newTestClientAuth(t)

	srv.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "bad"})

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Login_MissingFieldsSkipsNetwork(t *testing.T) {
	svc, _, _ := newTestClientAuth(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	svc, _, srv := newTestClientAuth(t)

	srv.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailAlreadyExists))

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Session ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Session(t *testing.T) {
	svc, sessions, _ := newTestClientAuth(t)

	sessions.EXPECT().GetSession(gomock.Any()).Return(models.ClientSession{}, store.ErrSessionNotFound)
	_, err := svc.Session(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	sessions.EXPECT().GetSession(gomock.Any()).Return(models.ClientSession{Token: "tok"}, nil)
	got, err := svc.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, sessions, srv := newTestClientAuth(t)

	sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)
	srv.EXPECT().SetToken("")

	assert.NoError(t, svc.Logout(context.Background()))
}

func TestClientAuthService_Whoami(t *testing.T) {
	t.Run("uses session token", func(t *testing.T) {
		svc, _, srv := newTestClientAuth(t)

		srv.EXPECT().BaseURL().Return(testServerURL)
		srv.EXPECT().SetToken("tok")
		srv.EXPECT().Profile(gomock.Any()).Return(models.User{UserID: 7}, nil)

		got, err := svc.Whoami(context.Background(), models.ClientSession{ServerURL: testServerURL, Token: "tok"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.UserID)
	})

	t.Run("expired token", func(t *testing.T) {
		svc, _, srv := newTestClientAuth(t)

		srv.EXPECT().BaseURL().Return(testServerURL)
		srv.EXPECT().SetToken("tok")
		srv.EXPECT().Profile(gomock.Any()).
			Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired))

		_, err := svc.Whoami(context.Background(), models.ClientSession{ServerURL: testServerURL, Token: "tok"})
		assert.ErrorIs(t, err, ErrTokenIsExpired)
	})

	t.Run("session for another server", func(t *testing.T) {
		svc, _, srv := newTestClientAuth(t)

		srv.EXPECT().BaseURL().Return(testServerURL).AnyTimes()

		_, err := svc.Whoami(context.Background(), models.ClientSession{ServerURL: "https://other.example.com", Token: "tok"})
		assert.ErrorIs(t, err, ErrSessionForOtherServer)
	})

	t.Run("empty session", func(t *testing.T) {
		svc, _, _ := newTestClientAuth(t)

		_, err := svc.Whoami(context.Background(), models.ClientSession{})
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, msg string) error { return fmt.Errorf("%w: %s", sentinel, msg) }
	other := errors.New("connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "bad extension", in: wrap(adapter.ErrBadRequest, app.MsgOnlySpreadsheetsAllowed), want: spreadsheet.ErrUnsupportedFileType},
		{name: "history id", in: wrap(adapter.ErrBadRequest, app.MsgHistoryIDRequired), want: ErrValidationNoHistoryID},
		{name: "export format", in: wrap(adapter.ErrBadRequest, app.MsgUnsupportedExportFormat), want: ErrValidationExportFormat},
		{name: "invalid token", in: wrap(adapter.ErrUnauthorized, app.MsgInvalidAuthorization), want: ErrTokenIsExpiredOrInvalid},
		{name: "forbidden", in: wrap(adapter.ErrForbidden, app.MsgAccessDenied), want: ErrUnauthorizedAccessToDifferentUserData},
		{name: "history not found", in: wrap(adapter.ErrNotFound, app.MsgHistoryNotFound), want: store.ErrHistoryNotFound},
		{name: "analysis not found", in: wrap(adapter.ErrNotFound, app.MsgAnalysisNotFound), want: store.ErrAnalysisNotFound},
		{name: "too large", in: wrap(adapter.ErrPayloadTooLarge, app.MsgFileTooLarge), want: ErrFileTooLarge},
		{name: "google disabled", in: wrap(adapter.ErrNotImplemented, app.MsgGoogleLoginDisabled), want: ErrGoogleLoginDisabled},
		{name: "db down", in: wrap(adapter.ErrServiceUnavailable, app.MsgServiceUnavailable), want: ErrDatabaseUnavailable},
		{name: "unknown passes through", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
