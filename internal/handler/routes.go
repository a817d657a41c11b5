package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/adboard/adboard-go/internal/config"
	"github.com/adboard/adboard-go/internal/middleware"
)

// NewRouter wires the full middleware chain and all API routes. main and the
// integration tests share this construction.
func NewRouter(cfg config.Config, auth *AuthHandler, listings *ListingHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/register", auth.HandleRegister)
	r.Post("/api/login", auth.HandleLogin)

	r.Get("/api/listings", listings.HandleList)
	r.Get("/api/listings/{listing_id}", listings.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/api/listings", listings.HandleCreate)
	})

	return r
}
