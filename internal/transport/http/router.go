package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gracehill/ministry/internal/transport/http/handlers"
)

func NewRouter(prayer *handlers.PrayerRequestHandler, contact *handlers.ContactMessageHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/prayer-requests", prayer.Submit)
		r.Get("/prayer-requests", prayer.List)
		r.Get("/prayer-requests/public", prayer.ListPublic)
		r.Patch("/prayer-requests/{id}/status", prayer.UpdateStatus)

		r.Post("/contact", contact.Submit)
		r.Get("/contact", contact.List)
	})

	return r
}
