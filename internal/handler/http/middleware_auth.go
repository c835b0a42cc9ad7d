package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the resulting
// [models.Session] in the request context for downstream handlers.
//
// Requests are rejected with 401 when the header is absent, malformed, or
// carries an expired or invalid token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		session := models.Session{UserID: token.UserID, Role: token.Role}
		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", session.UserID)
		})

		ctx = log.Attach(utils.WithSession(ctx, session))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok || !session.IsAdmin() {
			writeError(w, r, "*Handler.adminOnly", ErrAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionFrom returns the session stored by auth. Handlers behind auth can
// rely on it being present.
func sessionFrom(r *http.Request) models.Session {
	session, _ := utils.GetSessionFromContext(r.Context())
	return session
}
