// Package router sets up all HTTP routes and middleware chains for the
// blog API. Public reads and authenticated mutations share one /api tree;
// the bearer-token middleware guards only the groups that need it.
package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/vasei-me/Architecture-Blog-API/internal/handlers"
	"github.com/vasei-me/Architecture-Blog-API/internal/middleware"
	"github.com/vasei-me/Architecture-Blog-API/internal/token"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(tokens *token.Manager, auth *handlers.Auth, posts *handlers.Posts, categories *handlers.Categories, comments *handlers.Comments) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	requireAuth := middleware.RequireAuth(tokens)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", auth.Register)
			r.Post("/login", auth.Login)
			r.With(requireAuth).Get("/profile", auth.Profile)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Get("/{id}", posts.Get)
			r.Get("/{id}/comments", comments.ListByPost)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", posts.Create)
				r.Put("/{id}", posts.Update)
				r.Delete("/{id}", posts.Delete)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.Get("/popular", categories.Popular)
			r.Get("/slug/{slug}", categories.GetBySlug)
			r.Get("/{id}", categories.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", categories.Create)
				r.Put("/{id}", categories.Update)
				r.Delete("/{id}", categories.Delete)
				r.Post("/{id}/posts", categories.AddPost)
				r.Delete("/{id}/posts", categories.RemovePost)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", comments.Create)
			r.Put("/{id}", comments.Update)
			r.Delete("/{id}", comments.Delete)
			r.Post("/{id}/like", comments.Like)
		})

		r.Route("/me", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/posts", posts.Mine)
			r.Get("/comments", comments.Mine)
		})

		r.With(requireAuth).Get("/users/{userId}/posts", posts.ByUser)
	})

	r.NotFound(notFoundHandler)

	return r
}

// notFoundHandler keeps unknown routes inside the JSON envelope.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": fmt.Sprintf("Route %s not found", r.URL.Path),
	})
}
