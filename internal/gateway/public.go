// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aea-eng/aea-site/internal/model"
)

// PageContent fetches the ordered section list for a public page.
// Tokenless. A malformed sections payload yields an empty list.
func (c *Client) PageContent(ctx context.Context, pageName string) ([]model.Section, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/public/pages/"+pageName, "", nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Sections json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil
	}
	return decodeList[model.Section](payload.Sections), nil
}

// SubmitContact sends a public contact form submission.
func (c *Client) SubmitContact(ctx context.Context, form model.ContactFormData) error {
	_, err := c.do(ctx, http.MethodPost, "/api/public/contact", "", form)
	return err
}

// Staff lists staff members for public rendering. Tokenless.
func (c *Client) Staff(ctx context.Context) ([]model.StaffMember, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/public/staff", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.StaffMember](data), nil
}

// Projects lists projects for public rendering. Tokenless.
func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/public/projects", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.Project](data), nil
}

// Settings fetches the site-wide settings singleton. Tokenless.
func (c *Client) Settings(ctx context.Context) (model.SiteSettings, error) {
	var settings model.SiteSettings
	data, err := c.do(ctx, http.MethodGet, "/api/public/settings", "", nil)
	if err != nil {
		return settings, err
	}
	decodeObject(data, &settings)
	return settings, nil
}

// LoginResult is a successful credential exchange.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a session token. A single attempt; a
// 401 means invalid credentials and surfaces as ErrUnauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	body := map[string]string{"email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, &APIError{StatusCode: http.StatusOK, Message: "malformed login response"}
	}
	return result, nil
}
