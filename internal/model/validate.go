// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"net/mail"
	"strings"
)

// Field length limits for contact form input.
const (
	MaxContactNameLen    = 200
	MaxContactSubjectLen = 300
	MaxContactMessageLen = 5000
)

// ValidateContactForm checks a contact submission and returns a map of
// per-field error messages. An empty map means the data is valid.
func ValidateContactForm(data ContactFormData) map[string]string {
	fieldErrors := make(map[string]string)

	name := strings.TrimSpace(data.Name)
	switch {
	case name == "":
		fieldErrors["name"] = "Name is required"
	case len(name) > MaxContactNameLen:
		fieldErrors["name"] = "Name is too long"
	}

	email := strings.TrimSpace(data.Email)
	switch {
	case email == "":
		fieldErrors["email"] = "Email is required"
	default:
		if _, err := mail.ParseAddress(email); err != nil {
			fieldErrors["email"] = "Enter a valid email address"
		}
	}

	if len(data.Subject) > MaxContactSubjectLen {
		fieldErrors["subject"] = "Subject is too long"
	}

	message := strings.TrimSpace(data.Message)
	switch {
	case message == "":
		fieldErrors["message"] = "Message is required"
	case len(message) > MaxContactMessageLen:
		fieldErrors["message"] = "Message is too long"
	}

	return fieldErrors
}
