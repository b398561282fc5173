// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/aea-eng/aea-site/internal/model"
)

// All admin operations require a valid bearer token; a missing or
// revoked token yields ErrUnauthenticated from any of them.

// AdminPageContent fetches a page's sections for editing.
func (c *Client) AdminPageContent(ctx context.Context, token, pageName string) ([]model.Section, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/admin/pages/"+pageName, token, nil)
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

// UpdatePageContent replaces a page's whole section list.
func (c *Client) UpdatePageContent(ctx context.Context, token, pageName string, sections []model.Section) error {
	body := map[string][]model.Section{"sections": sections}
	_, err := c.do(ctx, http.MethodPut, "/api/admin/pages/"+pageName, token, body)
	return err
}

// AdminStaff lists staff members for the admin editor.
func (c *Client) AdminStaff(ctx context.Context, token string) ([]model.StaffMember, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/admin/staff", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.StaffMember](data), nil
}

// CreateStaff creates a staff member. The backend assigns the ID.
func (c *Client) CreateStaff(ctx context.Context, token string, member model.StaffMember) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/staff", token, member)
	return err
}

// UpdateStaff updates an existing staff member.
func (c *Client) UpdateStaff(ctx context.Context, token string, member model.StaffMember) error {
	_, err := c.do(ctx, http.MethodPut, "/api/admin/staff/"+member.ID, token, member)
	return err
}

// DeleteStaff removes a staff member.
func (c *Client) DeleteStaff(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/staff/"+id, token, nil)
	return err
}

// AdminProjects lists projects for the admin editor.
func (c *Client) AdminProjects(ctx context.Context, token string) ([]model.Project, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/admin/projects", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.Project](data), nil
}

// CreateProject creates a project. The backend assigns the ID.
func (c *Client) CreateProject(ctx context.Context, token string, project model.Project) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/projects", token, project)
	return err
}

// UpdateProject updates an existing project.
func (c *Client) UpdateProject(ctx context.Context, token string, project model.Project) error {
	_, err := c.do(ctx, http.MethodPut, "/api/admin/projects/"+project.ID, token, project)
	return err
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/projects/"+id, token, nil)
	return err
}

// AdminSettings fetches the settings singleton for editing.
func (c *Client) AdminSettings(ctx context.Context, token string) (model.SiteSettings, error) {
	var settings model.SiteSettings
	data, err := c.do(ctx, http.MethodGet, "/api/admin/settings", token, nil)
	if err != nil {
		return settings, err
	}
	decodeObject(data, &settings)
	return settings, nil
}

// UpdateSettings overwrites the settings singleton in place.
func (c *Client) UpdateSettings(ctx context.Context, token string, settings model.SiteSettings) error {
	_, err := c.do(ctx, http.MethodPut, "/api/admin/settings", token, settings)
	return err
}

// Contacts lists contact submissions, newest first per the backend.
func (c *Client) Contacts(ctx context.Context, token string) ([]model.ContactSubmission, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/admin/contacts", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.ContactSubmission](data), nil
}

// Contact fetches one contact submission.
func (c *Client) Contact(ctx context.Context, token, id string) (model.ContactSubmission, error) {
	var submission model.ContactSubmission
	data, err := c.do(ctx, http.MethodGet, "/api/admin/contacts/"+id, token, nil)
	if err != nil {
		return submission, err
	}
	if err := json.Unmarshal(data, &submission); err != nil {
		return submission, &APIError{StatusCode: http.StatusOK, Message: "malformed submission response"}
	}
	return submission, nil
}

// DeleteContact removes a contact submission.
func (c *Client) DeleteContact(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/admin/contacts/"+id, token, nil)
	return err
}

// MarkContactRead flips a submission's read flag. Idempotent on the
// backend: marking an already-read message again is a no-op.
func (c *Client) MarkContactRead(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/admin/contacts/"+id+"/read", token, nil)
	return err
}

// Dashboard fetches admin dashboard statistics.
func (c *Client) Dashboard(ctx context.Context, token string) (model.DashboardStats, error) {
	var stats model.DashboardStats
	data, err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", token, nil)
	if err != nil {
		return stats, err
	}
	decodeObject(data, &stats)
	return stats, nil
}

// UploadImage forwards a single file to the backend and returns the
// stored URL. This is the only multipart operation; no size or type
// validation happens here, that is the backend's concern.
func (c *Client) UploadImage(ctx context.Context, token, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copying upload data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading upload response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.URL == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Message: "malformed upload response"}
	}
	return payload.URL, nil
}
