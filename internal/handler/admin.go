// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/aea-eng/aea-site/internal/gateway"
	"github.com/aea-eng/aea-site/internal/model"
	"github.com/aea-eng/aea-site/internal/render"
	"github.com/aea-eng/aea-site/internal/session"
)

// AdminHandler serves the authenticated admin panel. Every mutation is
// forwarded to the backend with the session's bearer token; the panel
// itself holds no content of its own apart from in-progress page edits.
type AdminHandler struct {
	gw       *gateway.Client
	sm       *session.Manager
	renderer *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(gw *gateway.Client, sm *session.Manager, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{gw: gw, sm: sm, renderer: renderer}
}

func (h *AdminHandler) renderAdmin(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	user, _ := h.sm.User(r.Context())
	err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title: title,
		Data:  data,
		User:  user,
	})
	if err != nil {
		logAndInternalError(w, "render error", "template", tmpl, "error", err)
	}
}

// token returns the session's bearer token. The route guard runs
// first, so an empty token here still reaches the backend and comes
// back as a 401, which resets the session.
func (h *AdminHandler) token(r *http.Request) string {
	return h.sm.Token(r.Context())
}

// DashboardData is the admin dashboard view model.
type DashboardData struct {
	Stats     model.DashboardStats
	LoadError bool
}

// Dashboard renders content counts for the admin landing page.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := DashboardData{}

	stats, err := h.gw.Dashboard(r.Context(), h.token(r))
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to load dashboard stats", "error", err)
		data.LoadError = true
	} else {
		data.Stats = stats
	}

	h.renderAdmin(w, r, "admin/dashboard", "Dashboard", data)
}
