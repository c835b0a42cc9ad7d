package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.register", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully registered")
	h.writeAuthResponse(w, r, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.login", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	h.writeAuthResponse(w, r, user)
}

func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.googleLogin", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.GoogleLogin(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.googleLogin", err)
		return
	}

	h.writeAuthResponse(w, r, user)
}

// writeAuthResponse issues a token for user and returns it both in the
// Authorization header and in the body.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.writeAuthResponse", err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: &user}, http.StatusOK)
}

func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	writeMessage(w, http.StatusOK, fmt.Sprintf("✅ Hello user %d, you are authenticated!", session.UserID))
}

func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "✅ Welcome admin! You have access to admin routes.")
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Profile(r.Context(), sessionFrom(r).UserID)
	if err != nil {
		writeError(w, r, "*Handler.me", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
