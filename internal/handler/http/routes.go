package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(withGZipRequests)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/google", h.googleLogin)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	// routes for authenticated users
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/protected", h.protected)
		r.Get("/api/user/me", h.me)

		r.Post("/api/upload", h.upload)
		r.Get("/api/upload/download/{id}", h.download)

		r.Post("/api/history/save", h.saveHistory)
		r.Get("/api/history", h.listHistory)
		// {id} is the owner's user id here; the other history routes take a record id.
		r.Get("/api/history/{id}", h.listUserHistory)
		r.Get("/api/history/{id}/dataset", h.historyDataset)
		r.Delete("/api/history/{id}", h.deleteHistory)

		r.Post("/api/analysis", h.createAnalysis)
		r.Get("/api/analysis", h.listAnalyses)
		r.Patch("/api/analysis/{id}", h.renameAnalysis)
		r.Delete("/api/analysis/{id}", h.deleteAnalysis)
		r.Get("/api/analysis/{id}/export", h.exportAnalysis)

		r.With(h.adminOnly).Get("/api/admin", h.admin)
	})

	router.MethodNotAllowed(methodNotRouted(router))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	return router
}
