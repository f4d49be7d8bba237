package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/kalender-jawa/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/convert/today
//	GET    /api/v1/convert/range?start=&end=
//	POST   /api/v1/convert/reverse
//	GET    /api/v1/convert/{date}
//	GET    /api/v1/calendar/{month}
//	GET    /api/v1/calendar/{month}/pdf
//	GET    /api/v1/constants
//	GET    /api/v1/labels
//
//	(API key)
//	GET    /api/v1/saved
//	POST   /api/v1/saved
//	GET    /api/v1/saved/weton?day=&pasaran=
//	GET    /api/v1/saved/{id}
//	PATCH  /api/v1/saved/{id}
//	DELETE /api/v1/saved/{id}
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(logger))
	r.Use(middleware.RealIP)
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	// ==========================================================================
	// Public routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/convert", func(r chi.Router) {
			r.Get("/today", handlers.ConvertToday)
			r.Get("/range", handlers.ConvertRange)
			r.Post("/reverse", handlers.ConvertReverse)
			r.Get("/{date}", handlers.ConvertDate)
		})

		r.Get("/calendar/{month}", handlers.GetMonth)
		r.Get("/calendar/{month}/pdf", handlers.GetMonthPDF)
		r.Get("/constants", handlers.GetConstants)
		r.Get("/labels", handlers.GetLabels)

		// ======================================================================
		// Saved dates (API key)
		// ======================================================================
		r.Route("/saved", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))

			r.Get("/", handlers.ListSaved)
			r.Post("/", handlers.CreateSaved)
			r.Get("/weton", handlers.ListSavedByWeton)
			r.Get("/{id}", handlers.GetSaved)
			r.Patch("/{id}", handlers.UpdateSaved)
			r.Delete("/{id}", handlers.DeleteSaved)
		})
	})

	return r
}
