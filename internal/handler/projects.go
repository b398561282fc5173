// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aea-eng/aea-site/internal/model"
)

// ProjectListData is the project list view model.
type ProjectListData struct {
	Projects []model.Project
}

// ProjectList lists all projects.
func (h *AdminHandler) ProjectList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.gw.AdminProjects(r.Context(), h.token(r))
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to load projects", "error", err)
		h.renderer.SetFlash(r, "Failed to load projects", "error")
		projects = nil
	}

	h.renderAdmin(w, r, "admin/project_list", "Projects", ProjectListData{Projects: projects})
}

// ProjectFormData is the project create/edit form view model.
type ProjectFormData struct {
	Project    model.Project
	Categories []string
	IsNew      bool
	Error      string
}

func projectForm(project model.Project, isNew bool, errMsg string) ProjectFormData {
	return ProjectFormData{
		Project:    project,
		Categories: model.ProjectCategories,
		IsNew:      isNew,
		Error:      errMsg,
	}
}

// ProjectNewForm renders an empty project form.
func (h *AdminHandler) ProjectNewForm(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r, "admin/project_form", "New Project", projectForm(model.Project{}, true, ""))
}

// ProjectEditForm renders the form pre-filled for one project.
func (h *AdminHandler) ProjectEditForm(w http.ResponseWriter, r *http.Request) {
	project, ok := h.findProject(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	h.renderAdmin(w, r, "admin/project_form", "Edit Project", projectForm(project, false, ""))
}

// ProjectCreate handles the new-project form, including its inline
// image upload action.
func (h *AdminHandler) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		flashError(w, r, h.renderer, redirectAdminProjects+"/new", "Invalid form data")
		return
	}
	project := projectFromForm(r)

	if r.PostFormValue("action") == "upload" {
		url, ok := h.uploadFormImage(w, r, redirectAdminProjects+"/new")
		if !ok {
			return
		}
		project.ImageURL = url
		h.renderAdmin(w, r, "admin/project_form", "New Project", projectForm(project, true, ""))
		return
	}

	if project.Title == "" {
		h.renderAdmin(w, r, "admin/project_form", "New Project", projectForm(project, true, "Title is required"))
		return
	}

	if err := h.gw.CreateProject(r.Context(), h.token(r), project); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to create project", "error", err)
		h.renderAdmin(w, r, "admin/project_form", "New Project", projectForm(project, true, "Failed to create project"))
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminProjects, "Project created")
}

// ProjectUpdate handles the edit form, including its inline image
// upload action.
func (h *AdminHandler) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	editURL := redirectAdminProjects + "/" + id + "/edit"

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		flashError(w, r, h.renderer, editURL, "Invalid form data")
		return
	}
	project := projectFromForm(r)
	project.ID = id

	if r.PostFormValue("action") == "upload" {
		url, ok := h.uploadFormImage(w, r, editURL)
		if !ok {
			return
		}
		project.ImageURL = url
		h.renderAdmin(w, r, "admin/project_form", "Edit Project", projectForm(project, false, ""))
		return
	}

	if project.Title == "" {
		h.renderAdmin(w, r, "admin/project_form", "Edit Project", projectForm(project, false, "Title is required"))
		return
	}

	if err := h.gw.UpdateProject(r.Context(), h.token(r), project); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to update project", "id", id, "error", err)
		h.renderAdmin(w, r, "admin/project_form", "Edit Project", projectForm(project, false, "Failed to update project"))
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminProjects, "Project updated")
}

// ProjectDelete removes a project and returns to the list.
func (h *AdminHandler) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.gw.DeleteProject(r.Context(), h.token(r), id); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to delete project", "id", id, "error", err)
		flashError(w, r, h.renderer, redirectAdminProjects, "Failed to delete project")
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminProjects, "Project deleted")
}

func (h *AdminHandler) findProject(w http.ResponseWriter, r *http.Request, id string) (model.Project, bool) {
	projects, err := h.gw.AdminProjects(r.Context(), h.token(r))
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return model.Project{}, false
		}
		flashError(w, r, h.renderer, redirectAdminProjects, "Failed to load projects")
		return model.Project{}, false
	}
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	http.NotFound(w, r)
	return model.Project{}, false
}

func projectFromForm(r *http.Request) model.Project {
	return model.Project{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Category:    r.PostFormValue("category"),
		Location:    r.PostFormValue("location"),
		ImageURL:    r.PostFormValue("image_url"),
	}
}
