// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session is the single source of truth for whether a visitor
// is authenticated against the backend, and as whom. The bearer token
// and serialized user record persist in SQLite-backed session storage
// and survive restarts; they are always written and cleared together.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/aea-eng/aea-site/internal/model"
)

// Durable session keys for the auth pair.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// Manager wraps scs with typed auth accessors.
type Manager struct {
	*scs.SessionManager
}

// New creates a session manager backed by the sessions table in db.
func New(db *sql.DB, isDev bool) *Manager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return &Manager{SessionManager: sm}
}

// SetAuth stores the token and user record. Both keys land in the same
// session record on commit, so the pair is atomic from the caller's
// perspective: write both or neither.
func (m *Manager) SetAuth(ctx context.Context, token string, user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	m.Put(ctx, KeyToken, token)
	m.Put(ctx, KeyUser, string(data))
	return nil
}

// ClearAuth removes both auth keys unconditionally. It never contacts
// the backend.
func (m *Manager) ClearAuth(ctx context.Context) {
	m.Remove(ctx, KeyToken)
	m.Remove(ctx, KeyUser)
}

// Token returns the stored bearer token, or "" when unauthenticated.
func (m *Manager) Token(ctx context.Context) string {
	return m.GetString(ctx, KeyToken)
}

// User returns the stored user record. ok is false when no user is
// stored or the stored payload does not parse.
func (m *Manager) User(ctx context.Context) (model.User, bool) {
	raw := m.GetString(ctx, KeyUser)
	if raw == "" {
		return model.User{}, false
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return model.User{}, false
	}
	return user, true
}

// IsAuthenticated reports whether a token is present. Token presence
// and the authenticated state must never disagree; CheckAuth reconciles
// them.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.Token(ctx) != ""
}

// CheckAuth reconciles the durable auth pair: the session counts as
// authenticated only when both the token and a parseable user record
// are present. Anything else resets to unauthenticated. A parse failure
// is "no session", not an error.
func (m *Manager) CheckAuth(ctx context.Context) bool {
	if m.Token(ctx) == "" {
		m.ClearAuth(ctx)
		return false
	}
	if _, ok := m.User(ctx); !ok {
		m.ClearAuth(ctx)
		return false
	}
	return true
}
