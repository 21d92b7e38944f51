// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/vasei-me/Architecture-Blog-API/internal/middleware"
	"github.com/vasei-me/Architecture-Blog-API/internal/service"
)

// Auth groups the authentication HTTP handlers.
type Auth struct {
	auth *service.AuthService
	dev  bool
}

// NewAuth creates a new Auth handler group.
func NewAuth(auth *service.AuthService, dev bool) *Auth {
	return &Auth{auth: auth, dev: dev}
}

// Register handles POST /api/auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var in service.Registration
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	res, err := h.auth.Register(in)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}

	respond(w, http.StatusCreated, "User registered successfully", authData(res))
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var in service.Credentials
	if err := decode(r, &in); err != nil {
		respondError(w, err, h.dev)
		return
	}

	res, err := h.auth.Login(in)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}

	respond(w, http.StatusOK, "Login successful", authData(res))
}

// Profile handles GET /api/auth/profile.
func (h *Auth) Profile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	user, err := h.auth.Profile(claims.UserID)
	if err != nil {
		respondError(w, err, h.dev)
		return
	}

	respond(w, http.StatusOK, "Profile retrieved successfully", map[string]any{"user": user})
}

func authData(res *service.AuthResult) map[string]any {
	return map[string]any{
		"user": map[string]any{
			"id":       res.ID,
			"username": res.Username,
			"email":    res.Email,
		},
		"token": res.Token,
	}
}
