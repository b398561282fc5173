// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain types exchanged with the backend API:
// page sections, staff members, projects, contact submissions and
// site-wide settings.
package model

import "time"

// Section is a named, orderable block of editable text/image content
// belonging to one page. Name is the lookup key for content resolution;
// when a page carries duplicate names the first match wins.
type Section struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	Order    int    `json:"order"`
}

// PageContent is the ordered set of sections composing one public page.
type PageContent struct {
	ID       string    `json:"id"`
	PageName string    `json:"pageName"`
	Sections []Section `json:"sections"`
}

// StaffMember represents one person on the staff page.
// DisplayOrder is an advisory sort key, not a unique identifier.
type StaffMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
}

// Project represents one reference project, grouped by free-text
// category for public rendering.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ContactFormData is a public contact form submission payload.
type ContactFormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ContactSubmission is a stored contact message. Only the Read flag is
// ever mutated; everything else is immutable once created.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// SiteSettings is the singleton site configuration, always overwritten
// in place.
type SiteSettings struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	FacebookURL  string `json:"facebookUrl"`
}

// User identifies an authenticated admin user.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DashboardStats summarizes content counts for the admin dashboard.
type DashboardStats struct {
	TotalPages     int `json:"totalPages"`
	TotalStaff     int `json:"totalStaff"`
	TotalProjects  int `json:"totalProjects"`
	TotalMessages  int `json:"totalMessages"`
	UnreadMessages int `json:"unreadMessages"`
}

// PageNames lists the public pages whose sections are editable in the
// admin panel.
var PageNames = []string{"home", "services", "projects", "staff", "about", "contact"}

// IsValidPageName reports whether name is one of the editable pages.
func IsValidPageName(name string) bool {
	for _, n := range PageNames {
		if n == name {
			return true
		}
	}
	return false
}

// ProjectCategories are the category choices offered by the admin
// project editor. The public path accepts any free-text category.
var ProjectCategories = []string{
	"Irrigation",
	"Drainage",
	"Land Development",
	"Water Management",
	"Soil Conservation",
	"Other",
}
