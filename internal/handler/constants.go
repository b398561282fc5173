// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteServices is the public services page.
	RouteServices = "/services"
	// RouteProjects is the public projects page.
	RouteProjects = "/projects"
	// RouteStaff is the public staff page.
	RouteStaff = "/staff"
	// RouteAbout is the public about page.
	RouteAbout = "/about"
	// RouteContact is the public contact page.
	RouteContact = "/contact"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamPageName is the page name parameter pattern.
	RouteParamPageName = "/{pageName}"

	// RouteLogin is the admin login route.
	RouteLogin = "/admin/login"
	// RouteLogout is the admin logout route.
	RouteLogout = "/admin/logout"

	// redirectAdmin is the admin dashboard location.
	redirectAdmin = "/admin"
	// redirectAdminPages is the page editor list location.
	redirectAdminPages = "/admin/pages"
	// redirectAdminStaff is the staff editor list location.
	redirectAdminStaff = "/admin/staff"
	// redirectAdminProjects is the project editor list location.
	redirectAdminProjects = "/admin/projects"
	// redirectAdminMessages is the message list location.
	redirectAdminMessages = "/admin/messages"
	// redirectAdminSettings is the settings editor location.
	redirectAdminSettings = "/admin/settings"
)

// HeaderContentType is the Content-Type header name.
const HeaderContentType = "Content-Type"
