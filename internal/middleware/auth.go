// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for the admin route
// guard, CSRF protection, rate limiting and security headers.
package middleware

import (
	"net/http"

	"github.com/aea-eng/aea-site/internal/session"
)

// RouteLogin is where unauthenticated admin visitors are sent.
const RouteLogin = "/admin/login"

// Auth gates the admin subtree. It consults only the locally stored
// session, never the backend: a token revoked upstream is discovered on
// the next gateway call, whose 401 resets the session. CheckAuth also
// reconciles a half-written or corrupted auth pair on every pass.
func Auth(sm *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sm.CheckAuth(r.Context()) {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireGuest redirects authenticated visitors away from the login
// page to the admin dashboard.
func RequireGuest(sm *session.Manager, redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sm.CheckAuth(r.Context()) {
				http.Redirect(w, r, redirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
