// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vasei-me/Architecture-Blog-API/internal/middleware"
	"github.com/vasei-me/Architecture-Blog-API/internal/models"
	"github.com/vasei-me/Architecture-Blog-API/internal/service"
)

// Posts groups the post HTTP handlers.
type Posts struct {
	posts *service.PostService
	dev   bool
}

// NewPosts creates a new Posts handler group.
func NewPosts(posts *service.PostService, dev bool) *Posts {
	return &Posts{posts: posts, dev: dev}
}

// List handles GET /api/posts.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, pg, err := h.posts.List(
		r.URL.Query().Get("status"),
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respondList(w, "Posts retrieved successfully", postList(items, pg))
}

// Get handles GET /api/posts/{id}.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.posts.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Post retrieved successfully", map[string]any{"post": p})
}

// Create handles POST /api/posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var in service.CreatePostInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	p, err := h.posts.Create(in, claims.UserID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusCreated, "Post created successfully", map[string]any{"post": p})
}

// Update handles PUT /api/posts/{id}.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var in service.UpdatePostInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	p, err := h.posts.Update(chi.URLParam(r, "id"), in, claims.UserID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Post updated successfully", map[string]any{"post": p})
}

// Delete handles DELETE /api/posts/{id}.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	if err := h.posts.Delete(chi.URLParam(r, "id"), claims.UserID); err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Post deleted successfully", nil)
}

// Mine handles GET /api/me/posts.
func (h *Posts) Mine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	items, pg, err := h.posts.ListByAuthor(claims.UserID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respondList(w, "Posts retrieved successfully", postList(items, pg))
}

// ByUser handles GET /api/users/{userId}/posts.
func (h *Posts) ByUser(w http.ResponseWriter, r *http.Request) {
	items, pg, err := h.posts.ListByUser(chi.URLParam(r, "userId"), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respondList(w, "Posts retrieved successfully", postList(items, pg))
}

func postList(items []models.Post, pg service.Pagination) map[string]any {
	if items == nil {
		items = []models.Post{}
	}
	return map[string]any{"posts": items, "pagination": pg}
}
