package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateIDNormalize(t *testing.T) {
	for _, id := range TemplateIDs {
		assert.Equal(t, id, id.Normalize())
	}
	assert.Equal(t, TemplateModern, TemplateID("brutalist").Normalize())
	assert.Equal(t, TemplateModern, TemplateID("").Normalize())
	assert.Equal(t, TemplateModern, TemplateID("Modern").Normalize(), "ids are case sensitive")
}

func TestFontFamilyNormalize(t *testing.T) {
	assert.Equal(t, FontSerif, FontSerif.Normalize())
	assert.Equal(t, FontSans, FontFamily("comic-sans").Normalize())
	assert.Equal(t, FontSans, FontFamily("").Normalize())
}

func TestThemeSuggestionMerge(t *testing.T) {
	cur := ResumeTheme{TemplateID: TemplateClassic, PrimaryColor: "#111111", FontFamily: FontSerif}

	t.Run("full valid suggestion replaces everything", func(t *testing.T) {
		got := ThemeSuggestion{TemplateID: "tech", PrimaryColor: "#00FF00", FontFamily: "mono"}.Merge(cur)
		assert.Equal(t, ResumeTheme{TemplateID: TemplateTech, PrimaryColor: "#00FF00", FontFamily: FontMono}, got)
	})

	t.Run("unknown fields keep current values", func(t *testing.T) {
		got := ThemeSuggestion{TemplateID: "galactic", FontFamily: "wingdings"}.Merge(cur)
		assert.Equal(t, cur, got)
	})

	t.Run("partial suggestion merges field by field", func(t *testing.T) {
		got := ThemeSuggestion{PrimaryColor: "teal"}.Merge(cur)
		assert.Equal(t, TemplateClassic, got.TemplateID)
		assert.Equal(t, "teal", got.PrimaryColor)
		assert.Equal(t, FontSerif, got.FontFamily)
	})

	t.Run("empty suggestion is a no-op", func(t *testing.T) {
		assert.Equal(t, cur, ThemeSuggestion{}.Merge(cur))
	})
}

func TestDefaultTheme(t *testing.T) {
	def := DefaultTheme()
	assert.Equal(t, TemplateModern, def.TemplateID)
	assert.Equal(t, "#4F46E5", def.PrimaryColor)
	assert.Equal(t, FontSans, def.FontFamily)
}
