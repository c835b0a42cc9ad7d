package http

import "net/http"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, r, "*Handler.health", err)
		return
	}

	writeMessage(w, http.StatusOK, "ok")
}
