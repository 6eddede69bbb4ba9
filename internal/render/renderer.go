package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"cv-genius/internal/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer maps a resume and theme to the full A4 page markup. Rendering
// is pure: identical inputs always produce identical markup, missing data
// omits sections instead of producing empty blocks, and an unrecognized
// template id falls back to the modern variant.
type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.New("resume").ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render produces the export-grade page: the fixed physical A4 layout with
// no display-only decoration. This is the markup the export pipeline
// captures at 1:1 scale.
func (r *Renderer) Render(data model.ResumeData, theme model.ResumeTheme) (string, error) {
	return r.execute(newPage(data, theme, false))
}

// RenderPreview is Render plus the on-screen-only chrome (the preview
// footer badge). Consumers scale the result down for display with a
// transform the export path never sees.
func (r *Renderer) RenderPreview(data model.ResumeData, theme model.ResumeTheme) (string, error) {
	return r.execute(newPage(data, theme, true))
}

func (r *Renderer) execute(p *page) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, "page", p); err != nil {
		return "", fmt.Errorf("execute template %s: %w", p.Template, err)
	}
	return buf.String(), nil
}
