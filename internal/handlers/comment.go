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

// Comments groups the comment HTTP handlers.
type Comments struct {
	comments *service.CommentService
	dev      bool
}

// NewComments creates a new Comments handler group.
func NewComments(comments *service.CommentService, dev bool) *Comments {
	return &Comments{comments: comments, dev: dev}
}

// ListByPost handles GET /api/posts/{id}/comments.
func (h *Comments) ListByPost(w http.ResponseWriter, r *http.Request) {
	items, pg, err := h.comments.ListByPost(chi.URLParam(r, "id"), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respondList(w, "Comments retrieved successfully", commentList(items, pg))
}

// Mine handles GET /api/me/comments.
func (h *Comments) Mine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	items, pg, err := h.comments.ListByAuthor(claims.UserID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respondList(w, "Comments retrieved successfully", commentList(items, pg))
}

// Create handles POST /api/comments.
func (h *Comments) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var in service.CreateCommentInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	c, err := h.comments.Create(in, claims.UserID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusCreated, "Comment created successfully", map[string]any{"comment": c})
}

// Update handles PUT /api/comments/{id}.
func (h *Comments) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var in service.UpdateCommentInput
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	c, err := h.comments.Update(chi.URLParam(r, "id"), in, claims.UserID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Comment updated successfully", map[string]any{"comment": c})
}

// Delete handles DELETE /api/comments/{id}.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	if err := h.comments.Delete(chi.URLParam(r, "id"), claims.UserID); err != nil {
		respondError(w, err, h.dev)
		return
	}
	respond(w, http.StatusOK, "Comment deleted successfully", nil)
}

// Like handles POST /api/comments/{id}/like. The same endpoint likes and
// unlikes; the message reports which way the toggle went.
func (h *Comments) Like(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	res, err := h.comments.ToggleLike(chi.URLParam(r, "id"), claims.UserID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}

	message := "Comment unliked successfully"
	if res.Liked {
		message = "Comment liked successfully"
	}
	respond(w, http.StatusOK, message, map[string]any{"comment": res.Comment})
}

func commentList(items []models.Comment, pg service.Pagination) map[string]any {
	if items == nil {
		items = []models.Comment{}
	}
	return map[string]any{"comments": items, "pagination": pg}
}
