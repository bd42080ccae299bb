package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	profileHandler *handlers.ProfileHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Chat ────
		r.Post("/chat", chatHandler.Ask)

		// ──── Static profile data ────
		r.Get("/profile", profileHandler.GetProfile)
		r.Get("/skills", profileHandler.GetSkills)
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", profileHandler.ListProjects)
			r.Get("/{slug}", profileHandler.GetProject)
		})
	})

	return r
}
