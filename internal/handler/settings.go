// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/aea-eng/aea-site/internal/model"
)

// SettingsData is the settings form view model.
type SettingsData struct {
	Settings model.SiteSettings
	Error    string
}

// SettingsForm renders the singleton site settings form.
func (h *AdminHandler) SettingsForm(w http.ResponseWriter, r *http.Request) {
	data := SettingsData{}
	settings, err := h.gw.AdminSettings(r.Context(), h.token(r))
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to load settings", "error", err)
		data.Error = "Failed to load current settings"
	} else {
		data.Settings = settings
	}
	h.renderAdmin(w, r, "admin/settings", "Site Settings", data)
}

// SettingsUpdate overwrites the settings record in place.
func (h *AdminHandler) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminSettings) {
		return
	}

	settings := model.SiteSettings{
		BusinessName: r.PostFormValue("business_name"),
		Address:      r.PostFormValue("address"),
		Phone:        r.PostFormValue("phone"),
		Email:        r.PostFormValue("email"),
		FacebookURL:  r.PostFormValue("facebook_url"),
	}

	if settings.BusinessName == "" {
		h.renderAdmin(w, r, "admin/settings", "Site Settings", SettingsData{Settings: settings, Error: "Business name is required"})
		return
	}

	if err := h.gw.UpdateSettings(r.Context(), h.token(r), settings); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to update settings", "error", err)
		h.renderAdmin(w, r, "admin/settings", "Site Settings", SettingsData{Settings: settings, Error: "Failed to save settings"})
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminSettings, "Settings saved")
}
