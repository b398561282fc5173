// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/aea-eng/aea-site/internal/content"
	"github.com/aea-eng/aea-site/internal/gateway"
	"github.com/aea-eng/aea-site/internal/model"
	"github.com/aea-eng/aea-site/internal/render"
)

// defaultSettings is rendered when the settings fetch fails. Public
// visitors never see raw errors, only fallback content.
var defaultSettings = model.SiteSettings{
	BusinessName: "Agricultural Engineering Associates",
	Address:      "1000 County Road 100, Uniontown, KS 66779",
	Phone:        "(620) 555-0180",
	Email:        "info@aea-eng.com",
}

// PublicHandler renders the public marketing pages from backend
// sections, with fallbacks when content is absent.
type PublicHandler struct {
	gw       *gateway.Client
	renderer *render.Renderer
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(gw *gateway.Client, renderer *render.Renderer) *PublicHandler {
	return &PublicHandler{gw: gw, renderer: renderer}
}

// loadSections fetches a page's sections, degrading to none on any
// failure so the template falls back to built-in copy.
func (h *PublicHandler) loadSections(r *http.Request, pageName string) []model.Section {
	sections, err := h.gw.PageContent(r.Context(), pageName)
	if err != nil {
		slog.Warn("failed to load page sections", "page", pageName, "error", err)
		return nil
	}
	model.SortSections(sections)
	return sections
}

// loadSettings fetches site settings, degrading to defaults.
func (h *PublicHandler) loadSettings(r *http.Request) model.SiteSettings {
	settings, err := h.gw.Settings(r.Context())
	if err != nil {
		slog.Warn("failed to load site settings", "error", err)
		return defaultSettings
	}
	if settings.BusinessName == "" {
		settings.BusinessName = defaultSettings.BusinessName
	}
	return settings
}

func (h *PublicHandler) renderPage(w http.ResponseWriter, r *http.Request, tmpl, title string, data any) {
	err := h.renderer.Render(w, r, tmpl, render.TemplateData{
		Title:    title,
		Data:     data,
		Settings: h.loadSettings(r),
	})
	if err != nil {
		logAndInternalError(w, "render error", "template", tmpl, "error", err)
	}
}

// HeroData is the resolved hero block shared by the public pages.
type HeroData struct {
	Title    string
	Subtitle string
	Image    string
}

func hero(sections []model.Section, title, subtitle string) HeroData {
	return HeroData{
		Title:    content.ResolveTitle(sections, "hero", title),
		Subtitle: content.ResolveText(sections, "hero", subtitle),
		Image:    content.ResolveImage(sections, "hero", ""),
	}
}

// HomeData is the home page view model.
type HomeData struct {
	Hero     HeroData
	Intro    string
	Sections []model.Section
}

// Home renders the home page.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	sections := h.loadSections(r, "home")

	data := HomeData{
		Hero:     hero(sections, "Agricultural Engineering Associates", "Engineering solutions for production agriculture"),
		Intro:    content.ResolveText(sections, "intro", "We provide agricultural engineering services to producers, agribusiness and public agencies."),
		Sections: sections,
	}
	h.renderPage(w, r, "public/home", "Home", data)
}

// ServicesData is the services page view model.
type ServicesData struct {
	Hero     HeroData
	Sections []model.Section
}

// Services renders the services page.
func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	sections := h.loadSections(r, "services")

	data := ServicesData{
		Hero:     hero(sections, "Services", "Comprehensive Agricultural Engineering Solutions"),
		Sections: sections,
	}
	h.renderPage(w, r, "public/services", "Services", data)
}

// ProjectsData is the projects page view model.
type ProjectsData struct {
	Hero   HeroData
	Groups []model.ProjectGroup
}

// Projects renders the projects page, grouped by category.
func (h *PublicHandler) Projects(w http.ResponseWriter, r *http.Request) {
	sections := h.loadSections(r, "projects")

	projects, err := h.gw.Projects(r.Context())
	if err != nil {
		slog.Warn("failed to load projects", "error", err)
		projects = nil
	}

	data := ProjectsData{
		Hero:   hero(sections, "Projects", "Selected work across the region"),
		Groups: model.GroupProjects(projects),
	}
	h.renderPage(w, r, "public/projects", "Projects", data)
}

// StaffData is the staff page view model.
type StaffData struct {
	Hero  HeroData
	Staff []model.StaffMember
}

// Staff renders the staff page, sorted by display order.
func (h *PublicHandler) Staff(w http.ResponseWriter, r *http.Request) {
	sections := h.loadSections(r, "staff")

	staff, err := h.gw.Staff(r.Context())
	if err != nil {
		slog.Warn("failed to load staff", "error", err)
		staff = nil
	}
	model.SortStaff(staff)

	data := StaffData{
		Hero:  hero(sections, "Our Staff", "The people behind the projects"),
		Staff: staff,
	}
	h.renderPage(w, r, "public/staff", "Staff", data)
}

// AboutData is the about page view model.
type AboutData struct {
	Hero     HeroData
	Body     string
	Sections []model.Section
}

// About renders the about page.
func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	sections := h.loadSections(r, "about")

	data := AboutData{
		Hero:     hero(sections, "About Us", "Decades of agricultural engineering experience"),
		Body:     content.ResolveText(sections, "body", "Agricultural Engineering Associates has served producers and agribusiness since 1981."),
		Sections: sections,
	}
	h.renderPage(w, r, "public/about", "About", data)
}

// ContactData is the contact page view model.
type ContactData struct {
	Hero   HeroData
	Values model.ContactFormData
	Errors map[string]string
	Sent   bool
}

// Contact renders the contact page and form.
func (h *PublicHandler) Contact(w http.ResponseWriter, r *http.Request) {
	sections := h.loadSections(r, "contact")

	data := ContactData{
		Hero: hero(sections, "Contact Us", "Tell us about your project"),
		Sent: r.URL.Query().Get("sent") == "1",
	}
	h.renderPage(w, r, "public/contact", "Contact", data)
}

// SubmitContact handles the public contact form. Validation failures
// re-render the form with per-field errors before any backend attempt;
// a backend failure keeps the entered values so the visitor can retry.
func (h *PublicHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteContact, "Invalid form data")
		return
	}

	form := model.ContactFormData{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	if fieldErrors := model.ValidateContactForm(form); len(fieldErrors) > 0 {
		sections := h.loadSections(r, "contact")
		data := ContactData{
			Hero:   hero(sections, "Contact Us", "Tell us about your project"),
			Values: form,
			Errors: fieldErrors,
		}
		h.renderPage(w, r, "public/contact", "Contact", data)
		return
	}

	if err := h.gw.SubmitContact(r.Context(), form); err != nil {
		slog.Error("contact submission failed", "error", err)
		sections := h.loadSections(r, "contact")
		h.renderer.SetFlash(r, "Something went wrong sending your message. Please try again.", "error")
		data := ContactData{
			Hero:   hero(sections, "Contact Us", "Tell us about your project"),
			Values: form,
		}
		h.renderPage(w, r, "public/contact", "Contact", data)
		return
	}

	http.Redirect(w, r, RouteContact+"?sent=1", http.StatusSeeOther)
}
