// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "sort"

// SortStaff sorts staff members by DisplayOrder in place. The sort is
// stable: members with equal DisplayOrder keep their arrival order.
func SortStaff(staff []StaffMember) {
	sort.SliceStable(staff, func(i, j int) bool {
		return staff[i].DisplayOrder < staff[j].DisplayOrder
	})
}

// SortSections sorts sections by their display Order in place, stable
// for equal orders.
func SortSections(sections []Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}

// ProjectGroup is one category bucket of projects for public rendering.
type ProjectGroup struct {
	Category string
	Projects []Project
}

// GroupProjects buckets projects by category, preserving the order in
// which categories first appear and the relative order of projects
// within each category.
func GroupProjects(projects []Project) []ProjectGroup {
	var groups []ProjectGroup
	index := make(map[string]int)

	for _, p := range projects {
		category := p.Category
		if category == "" {
			category = "Other"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, ProjectGroup{Category: category})
		}
		groups[i].Projects = append(groups[i].Projects, p)
	}

	return groups
}
