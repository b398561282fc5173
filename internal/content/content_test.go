// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aea-eng/aea-site/internal/model"
)

func TestResolveText(t *testing.T) {
	tests := []struct {
		name     string
		sections []model.Section
		section  string
		fallback string
		want     string
	}{
		{
			name:     "nil sections returns fallback",
			sections: nil,
			section:  "hero",
			fallback: "Welcome",
			want:     "Welcome",
		},
		{
			name:     "empty sections returns fallback",
			sections: []model.Section{},
			section:  "hero",
			fallback: "Welcome",
			want:     "Welcome",
		},
		{
			name:     "match returns content",
			sections: []model.Section{{Name: "hero", Content: "Hi"}},
			section:  "hero",
			fallback: "Welcome",
			want:     "Hi",
		},
		{
			name:     "no match returns fallback",
			sections: []model.Section{{Name: "intro", Content: "Hi"}},
			section:  "hero",
			fallback: "Welcome",
			want:     "Welcome",
		},
		{
			name: "first match wins on duplicates",
			sections: []model.Section{
				{Name: "hero", Content: "first"},
				{Name: "hero", Content: "second"},
			},
			section:  "hero",
			fallback: "Welcome",
			want:     "first",
		},
		{
			name:     "empty content falls back",
			sections: []model.Section{{Name: "hero", Content: ""}},
			section:  "hero",
			fallback: "Welcome",
			want:     "Welcome",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveText(tt.sections, tt.section, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveImage(t *testing.T) {
	t.Run("nil sections returns fallback", func(t *testing.T) {
		assert.Equal(t, "/default.png", ResolveImage(nil, "hero", "/default.png"))
	})

	t.Run("match returns image URL", func(t *testing.T) {
		sections := []model.Section{{Name: "hero", ImageURL: "/uploads/hero.jpg"}}
		assert.Equal(t, "/uploads/hero.jpg", ResolveImage(sections, "hero", "/default.png"))
	})

	t.Run("section without image falls back", func(t *testing.T) {
		sections := []model.Section{{Name: "hero", Content: "text only"}}
		assert.Equal(t, "/default.png", ResolveImage(sections, "hero", "/default.png"))
	})

	t.Run("empty fallback means no image", func(t *testing.T) {
		assert.Equal(t, "", ResolveImage(nil, "hero", ""))
	})
}

func TestResolveTitle(t *testing.T) {
	sections := []model.Section{
		{Name: "hero", Title: "Engineering the land", Content: "body"},
		{Name: "bare"},
	}

	assert.Equal(t, "Engineering the land", ResolveTitle(sections, "hero", "AEA"))
	assert.Equal(t, "AEA", ResolveTitle(sections, "bare", "AEA"))
	assert.Equal(t, "AEA", ResolveTitle(sections, "missing", "AEA"))
}
