// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aea-eng/aea-site/internal/model"
)

// StaffListData is the staff list view model.
type StaffListData struct {
	Staff []model.StaffMember
}

// StaffList lists staff members in display order.
func (h *AdminHandler) StaffList(w http.ResponseWriter, r *http.Request) {
	staff, err := h.gw.AdminStaff(r.Context(), h.token(r))
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		// Degrade to an empty list rather than bouncing away.
		slog.Error("failed to load staff", "error", err)
		h.renderer.SetFlash(r, "Failed to load staff", "error")
		staff = nil
	}
	model.SortStaff(staff)

	h.renderAdmin(w, r, "admin/staff_list", "Staff", StaffListData{Staff: staff})
}

// StaffFormData is the staff create/edit form view model.
type StaffFormData struct {
	Member model.StaffMember
	IsNew  bool
	Error  string
}

// StaffNewForm renders an empty staff form.
func (h *AdminHandler) StaffNewForm(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r, "admin/staff_form", "New Staff Member", StaffFormData{IsNew: true})
}

// StaffEditForm renders the form pre-filled for one member.
func (h *AdminHandler) StaffEditForm(w http.ResponseWriter, r *http.Request) {
	member, ok := h.findStaff(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	h.renderAdmin(w, r, "admin/staff_form", "Edit Staff Member", StaffFormData{Member: member})
}

// StaffCreate handles the new-member form, including its inline photo
// upload action.
func (h *AdminHandler) StaffCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		flashError(w, r, h.renderer, redirectAdminStaff+"/new", "Invalid form data")
		return
	}
	member := staffFromForm(r)

	if r.PostFormValue("action") == "upload" {
		url, ok := h.uploadFormImage(w, r, redirectAdminStaff+"/new")
		if !ok {
			return
		}
		member.PhotoURL = url
		h.renderAdmin(w, r, "admin/staff_form", "New Staff Member", StaffFormData{Member: member, IsNew: true})
		return
	}

	if member.Name == "" {
		h.renderAdmin(w, r, "admin/staff_form", "New Staff Member", StaffFormData{Member: member, IsNew: true, Error: "Name is required"})
		return
	}

	if err := h.gw.CreateStaff(r.Context(), h.token(r), member); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to create staff member", "error", err)
		h.renderAdmin(w, r, "admin/staff_form", "New Staff Member", StaffFormData{Member: member, IsNew: true, Error: "Failed to create staff member"})
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminStaff, "Staff member created")
}

// StaffUpdate handles the edit form, including its inline photo upload
// action.
func (h *AdminHandler) StaffUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	editURL := redirectAdminStaff + "/" + id + "/edit"

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		flashError(w, r, h.renderer, editURL, "Invalid form data")
		return
	}
	member := staffFromForm(r)
	member.ID = id

	if r.PostFormValue("action") == "upload" {
		url, ok := h.uploadFormImage(w, r, editURL)
		if !ok {
			return
		}
		member.PhotoURL = url
		h.renderAdmin(w, r, "admin/staff_form", "Edit Staff Member", StaffFormData{Member: member})
		return
	}

	if member.Name == "" {
		h.renderAdmin(w, r, "admin/staff_form", "Edit Staff Member", StaffFormData{Member: member, Error: "Name is required"})
		return
	}

	if err := h.gw.UpdateStaff(r.Context(), h.token(r), member); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to update staff member", "id", id, "error", err)
		h.renderAdmin(w, r, "admin/staff_form", "Edit Staff Member", StaffFormData{Member: member, Error: "Failed to update staff member"})
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminStaff, "Staff member updated")
}

// StaffDelete removes a member and returns to the list.
func (h *AdminHandler) StaffDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.gw.DeleteStaff(r.Context(), h.token(r), id); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to delete staff member", "id", id, "error", err)
		flashError(w, r, h.renderer, redirectAdminStaff, "Failed to delete staff member")
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminStaff, "Staff member deleted")
}

// findStaff locates one member by ID via the list endpoint. The
// backend exposes no per-member read.
func (h *AdminHandler) findStaff(w http.ResponseWriter, r *http.Request, id string) (model.StaffMember, bool) {
	staff, err := h.gw.AdminStaff(r.Context(), h.token(r))
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return model.StaffMember{}, false
		}
		flashError(w, r, h.renderer, redirectAdminStaff, "Failed to load staff")
		return model.StaffMember{}, false
	}
	for _, m := range staff {
		if m.ID == id {
			return m, true
		}
	}
	http.NotFound(w, r)
	return model.StaffMember{}, false
}

func staffFromForm(r *http.Request) model.StaffMember {
	order, _ := strconv.Atoi(r.PostFormValue("display_order"))
	return model.StaffMember{
		Name:         r.PostFormValue("name"),
		Title:        r.PostFormValue("title"),
		Bio:          r.PostFormValue("bio"),
		PhotoURL:     r.PostFormValue("photo_url"),
		DisplayOrder: order,
	}
}
