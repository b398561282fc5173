// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aea-eng/aea-site/internal/gateway"
	"github.com/aea-eng/aea-site/internal/render"
	"github.com/aea-eng/aea-site/internal/session"
)

// AuthHandler handles admin login and logout. Credentials are verified
// by the backend; this process only stores the resulting token.
type AuthHandler struct {
	gw       *gateway.Client
	sm       *session.Manager
	renderer *render.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gw *gateway.Client, sm *session.Manager, renderer *render.Renderer) *AuthHandler {
	return &AuthHandler{gw: gw, sm: sm, renderer: renderer}
}

// LoginData is the login page view model.
type LoginData struct {
	Email string
	Error string
}

// LoginForm displays the login page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, LoginData{})
}

// Login authenticates against the backend and, on success, stores the
// token/user pair in the session. A failed attempt leaves the session
// untouched.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, LoginData{Error: "Invalid form data"})
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.renderLogin(w, r, LoginData{Email: email, Error: "Email and password are required"})
		return
	}

	result, err := h.gw.Login(r.Context(), email, password)
	if err != nil {
		var apiErr *gateway.APIError
		switch {
		case errors.Is(err, gateway.ErrUnauthenticated):
			h.renderLogin(w, r, LoginData{Email: email, Error: "Invalid email or password"})
		case errors.As(err, &apiErr):
			h.renderLogin(w, r, LoginData{Email: email, Error: apiErr.Message})
		default:
			slog.Error("login request failed", "error", err)
			h.renderLogin(w, r, LoginData{Email: email, Error: "Unable to reach the server. Please try again."})
		}
		return
	}

	// Fresh session ID on privilege change.
	if err := h.sm.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renew failed", "error", err)
		return
	}
	if err := h.sm.SetAuth(r.Context(), result.Token, result.User); err != nil {
		logAndInternalError(w, "session write failed", "error", err)
		return
	}

	slog.Info("admin logged in", "email", result.User.Email)
	http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
}

// Logout clears the session auth pair. It never contacts the backend,
// and succeeds even when no session exists.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sm.ClearAuth(r.Context())
	if err := h.sm.RenewToken(r.Context()); err != nil {
		slog.Warn("session renew failed on logout", "error", err)
	}
	http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, data LoginData) {
	err := h.renderer.Render(w, r, "auth/login", render.TemplateData{
		Title: "Admin Login",
		Data:  data,
	})
	if err != nil {
		logAndInternalError(w, "render error", "template", "auth/login", "error", err)
	}
}
