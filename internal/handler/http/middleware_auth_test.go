package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/sheetcharts/internal/service"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(m *serviceMocks)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "empty `Authorization` header",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid `Authorization` header",
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "token is expired",
		},
		{
			name:   "forged token",
			header: "Bearer forged",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "token is expired or invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			tt.setup(m)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assertMessage(t, rr, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestAuthMiddleware_StoresSession(t *testing.T) {
	h, m := newMockedHandler(t)
	authorization := m.signIn(9, models.RoleAdmin)

	var got models.Session
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.Header.Set("Authorization", authorization)
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	require.True(t, ok)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, models.Session{UserID: 9, Role: models.RoleAdmin}, got)
}

func TestAdminOnly_WithoutSession(t *testing.T) {
	h, _ := newMockedHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	rr := httptest.NewRecorder()
	h.adminOnly(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin", nil))

	assertMessage(t, rr, http.StatusForbidden, "admin access required")
}
