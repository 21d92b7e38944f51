// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vasei-me/Architecture-Blog-API/internal/models"
	"github.com/vasei-me/Architecture-Blog-API/internal/service"
)

// Categories groups the category HTTP handlers.
type Categories struct {
	categories *service.CategoryService
	dev        bool
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories *service.CategoryService, dev bool) *Categories {
	return &Categories{categories: categories, dev: dev}
}

// membershipInput is the body for category membership changes.
type membershipInput struct {
	PostID string `json:"postId"`
}

// List handles GET /api/categories.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, pg, err := h.categories.List(queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	respondList(w, "Categories retrieved successfully", map[string]any{"categories": items, "pagination": pg})
}

// Popular handles GET /api/categories/popular.
func (h *Categories) Popular(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.Popular(queryInt(r, "limit"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	respondList(w, "Popular categories retrieved successfully", map[string]any{"categories": items})
}

// Get handles GET /api/categories/{id}.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Category retrieved successfully", map[string]any{"category": c})
}

// GetBySlug handles GET /api/categories/slug/{slug}.
func (h *Categories) GetBySlug(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.GetBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Category retrieved successfully", map[string]any{"category": c})
}

// Create handles POST /api/categories.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	c, err := h.categories.Create(in)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusCreated, "Category created successfully", map[string]any{"category": c})
}

// Update handles PUT /api/categories/{id}.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	c, err := h.categories.Update(chi.URLParam(r, "id"), in)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Category updated successfully", map[string]any{"category": c})
}

// Delete handles DELETE /api/categories/{id}.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(chi.URLParam(r, "id")); err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Category deleted successfully", nil)
}

// AddPost handles POST /api/categories/{id}/posts.
func (h *Categories) AddPost(w http.ResponseWriter, r *http.Request) {
	var in membershipInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	c, err := h.categories.AddPost(chi.URLParam(r, "id"), in.PostID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Post added to category successfully", map[string]any{"category": c})
}

// RemovePost handles DELETE /api/categories/{id}/posts.
func (h *Categories) RemovePost(w http.ResponseWriter, r *http.Request) {
	var in membershipInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	c, err := h.categories.RemovePost(chi.URLParam(r, "id"), in.PostID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Post removed from category successfully", map[string]any{"category": c})
}
