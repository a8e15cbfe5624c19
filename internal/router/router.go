package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"content-curator/internal/handlers"
	"content-curator/internal/middleware"
)

func New(
	youtubeLinksHandler *handlers.YouTubeLinksHandler,
	quizHandler *handlers.QuizHandler,
	curateHandler *handlers.CurateHandler,
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

	r.Post("/youtube-links", youtubeLinksHandler.Generate)
	r.Post("/generate-quiz", quizHandler.Generate)

	r.Route("/api", func(r chi.Router) {
		r.Post("/curate", curateHandler.Curate)
	})

	return r
}
