package main

import (
	"encoding/json"
	"fmt"
	"os"

	"cv-genius/internal/model"
	"cv-genius/internal/render"
)

// Renders a resume JSON file (or the built-in sample) to HTML for quick
// template inspection without a browser or server.
func main() {
	data := model.SampleResume()
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
			os.Exit(2)
		}
		if err := json.Unmarshal(b, &data); err != nil {
			fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
			os.Exit(2)
		}
	}

	theme := model.DefaultTheme()
	if tpl := os.Getenv("TEMPLATE_ID"); tpl != "" {
		theme.TemplateID = model.TemplateID(tpl)
	}

	r, err := render.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "renderer: %v\n", err)
		os.Exit(2)
	}
	html, err := r.RenderPreview(data, theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	out := "resume_sample.html"
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Println("wrote", out)
}
