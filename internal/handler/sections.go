// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aea-eng/aea-site/internal/model"
)

// In-progress page edits live in the session under a per-page key. The
// draft survives navigation and restarts, and is dropped only on a
// successful save or an explicit discard.
const draftKeyPrefix = "page_draft_"

func draftKey(pageName string) string {
	return draftKeyPrefix + pageName
}

func (h *AdminHandler) loadDraft(r *http.Request, pageName string) ([]model.Section, bool) {
	raw := h.sm.GetString(r.Context(), draftKey(pageName))
	if raw == "" {
		return nil, false
	}
	var sections []model.Section
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		// Unparsable draft is no draft.
		h.sm.Remove(r.Context(), draftKey(pageName))
		return nil, false
	}
	return sections, true
}

func (h *AdminHandler) storeDraft(r *http.Request, pageName string, sections []model.Section) {
	data, err := json.Marshal(sections)
	if err != nil {
		slog.Error("failed to marshal page draft", "page", pageName, "error", err)
		return
	}
	h.sm.Put(r.Context(), draftKey(pageName), string(data))
}

func (h *AdminHandler) clearDraft(r *http.Request, pageName string) {
	h.sm.Remove(r.Context(), draftKey(pageName))
}

// PagesData is the page list view model.
type PagesData struct {
	Pages []string
}

// Pages lists the editable public pages.
func (h *AdminHandler) Pages(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r, "admin/pages", "Pages", PagesData{Pages: model.PageNames})
}

// PageEditData is the section editor view model.
type PageEditData struct {
	PageName string
	Sections []model.Section
	Dirty    bool
}

// EditPage renders the section editor. Unsaved edits from a previous
// request take precedence over backend content until saved or
// discarded.
func (h *AdminHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "pageName")
	if !model.IsValidPageName(pageName) {
		http.NotFound(w, r)
		return
	}

	data := PageEditData{PageName: pageName}
	if sections, ok := h.loadDraft(r, pageName); ok {
		data.Sections = sections
		data.Dirty = true
	} else {
		sections, err := h.gw.AdminPageContent(r.Context(), h.token(r), pageName)
		if err != nil {
			if handleUnauthenticated(w, r, h.sm, err) {
				return
			}
			flashError(w, r, h.renderer, redirectAdminPages, "Failed to load page content")
			return
		}
		model.SortSections(sections)
		data.Sections = sections
	}

	h.renderAdmin(w, r, "admin/page_edit", "Edit Page: "+pageName, data)
}

// UpdatePage dispatches the section editor's actions. Structural edits
// (add, remove, image upload) only touch the working copy; nothing
// reaches the backend until save, which replaces the whole page at
// once.
func (h *AdminHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "pageName")
	if !model.IsValidPageName(pageName) {
		http.NotFound(w, r)
		return
	}
	editURL := redirectAdminPages + "/" + pageName

	// The editor form carries file inputs, so it is always multipart.
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		flashError(w, r, h.renderer, editURL, "Invalid form data")
		return
	}

	sections := sectionsFromForm(r)

	// Per-row remove buttons submit their index as the button value.
	if v := r.PostFormValue("remove"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 || idx >= len(sections) {
			flashError(w, r, h.renderer, editURL, "Unknown section")
			return
		}
		sections = append(sections[:idx], sections[idx+1:]...)
		h.storeDraft(r, pageName, sections)
		http.Redirect(w, r, editURL, http.StatusSeeOther)
		return
	}

	switch r.PostFormValue("action") {
	case "add":
		sections = append(sections, model.Section{
			ID:    uuid.NewString(),
			Name:  r.PostFormValue("new_section_name"),
			Order: len(sections),
		})
		h.storeDraft(r, pageName, sections)
		http.Redirect(w, r, editURL, http.StatusSeeOther)

	case "upload":
		idx, err := strconv.Atoi(r.PostFormValue("index"))
		if err != nil || idx < 0 || idx >= len(sections) {
			flashError(w, r, h.renderer, editURL, "Unknown section")
			return
		}
		url, ok := h.uploadFormImage(w, r, editURL)
		if !ok {
			return
		}
		sections[idx].ImageURL = url
		h.storeDraft(r, pageName, sections)
		flashSuccess(w, r, h.renderer, editURL, "Image uploaded")

	case "save":
		err := h.gw.UpdatePageContent(r.Context(), h.token(r), pageName, sections)
		if err != nil {
			if handleUnauthenticated(w, r, h.sm, err) {
				return
			}
			// Keep the draft so nothing is lost.
			h.storeDraft(r, pageName, sections)
			slog.Error("failed to save page content", "page", pageName, "error", err)
			flashError(w, r, h.renderer, editURL, "Failed to save page content")
			return
		}
		h.clearDraft(r, pageName)
		flashSuccess(w, r, h.renderer, editURL, "Page saved")

	case "discard":
		h.clearDraft(r, pageName)
		flashAndRedirect(w, r, h.renderer, editURL, "Changes discarded", "info")

	default:
		flashError(w, r, h.renderer, editURL, "Unknown action")
	}
}

// sectionsFromForm rebuilds the working copy from the editor's
// index-aligned fields.
func sectionsFromForm(r *http.Request) []model.Section {
	ids := r.PostForm["section_id"]
	names := r.PostForm["section_name"]
	titles := r.PostForm["section_title"]
	contents := r.PostForm["section_content"]
	images := r.PostForm["section_image_url"]

	sections := make([]model.Section, 0, len(ids))
	for i := range ids {
		s := model.Section{ID: ids[i], Order: i}
		if i < len(names) {
			s.Name = names[i]
		}
		if i < len(titles) {
			s.Title = titles[i]
		}
		if i < len(contents) {
			s.Content = contents[i]
		}
		if i < len(images) {
			s.ImageURL = images[i]
		}
		sections = append(sections, s)
	}
	return sections
}
