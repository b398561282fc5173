// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content resolves named page sections to the text and image
// actually rendered, with fallbacks for missing or empty content.
package content

import "github.com/aea-eng/aea-site/internal/model"

// find returns the first section whose name matches. Duplicate names
// are tolerated; the first match wins.
func find(sections []model.Section, name string) *model.Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

// ResolveText returns the content of the first section named name, or
// fallback when the section list is nil or empty, no section matches,
// or the matching section has empty content.
func ResolveText(sections []model.Section, name, fallback string) string {
	if s := find(sections, name); s != nil && s.Content != "" {
		return s.Content
	}
	return fallback
}

// ResolveTitle returns the title of the first section named name, with
// the same fallback rules as ResolveText.
func ResolveTitle(sections []model.Section, name, fallback string) string {
	if s := find(sections, name); s != nil && s.Title != "" {
		return s.Title
	}
	return fallback
}

// ResolveImage returns the image URL of the first section named name,
// or fallback when absent. An empty fallback means "no image".
func ResolveImage(sections []model.Section, name, fallback string) string {
	if s := find(sections, name); s != nil && s.ImageURL != "" {
		return s.ImageURL
	}
	return fallback
}
