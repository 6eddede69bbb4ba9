package render

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"

	"cv-genius/internal/model"
)

// page is the view model every template variant consumes. The cross-cutting
// rules (section omission, name/title placeholders, typeface overrides,
// accent sanitization) live here so the ten variants cannot re-diverge.
type page struct {
	Template  string
	Accent    template.CSS
	FontStack template.CSS

	Name  string
	Title string

	Summary    string
	Experience []model.Experience
	Education  []model.Education
	Skills     []string
	Contact    contact
	Photo      *photo

	// Preview adds display-only chrome (the footer badge) that export
	// captures must not contain.
	Preview bool
}

type contact struct {
	Email        string
	Phone        string
	Location     string
	Website      string
	WebsiteLabel string
}

func (c contact) Any() bool {
	return c.Email != "" || c.Phone != "" || c.Location != "" || c.Website != ""
}

type photo struct {
	URL   string
	Style template.CSS
}

func newPage(data model.ResumeData, theme model.ResumeTheme, preview bool) *page {
	tpl := theme.TemplateID.Normalize()

	// Executive and tech force their typeface regardless of the theme.
	font := theme.FontFamily.Normalize()
	switch tpl {
	case model.TemplateExecutive:
		font = model.FontSerif
	case model.TemplateTech:
		font = model.FontMono
	}

	p := &page{
		Template:   string(tpl),
		Accent:     template.CSS(sanitizeColor(theme.PrimaryColor)),
		FontStack:  template.CSS(fontStack(font)),
		Name:       fallback(data.PersonalDetails.FullName, "Your Name"),
		Title:      fallback(data.PersonalDetails.JobTitle, "Job Title"),
		Summary:    data.Summary,
		Experience: data.Experience,
		Education:  data.Education,
		Skills:     model.FilterSkills(data.Skills),
		Preview:    preview,
	}

	p.Contact = contact{
		Email:        data.PersonalDetails.Email,
		Phone:        data.PersonalDetails.Phone,
		Location:     data.PersonalDetails.Location,
		Website:      data.PersonalDetails.Website,
		WebsiteLabel: websiteLabel(data.PersonalDetails.Website),
	}

	if u := data.PersonalDetails.PhotoURL; u != "" {
		t := ComputeTransform(data.PersonalDetails.PhotoConfig)
		p.Photo = &photo{URL: u, Style: template.CSS(t.CSS())}
	}

	return p
}

// PhotoFrame renders the shared fixed-size photo frame. The image is sized
// to always cover the frame at scale 1 (min dimensions match the frame,
// overflow clipped), with the crop transform applied on top. Shape is
// "circle", "rounded" or "square".
func (p *page) PhotoFrame(size int, shape string) template.HTML {
	if p.Photo == nil {
		return ""
	}
	radius := "0"
	switch shape {
	case "circle":
		radius = "50%"
	case "rounded":
		radius = "8px"
	}
	var b strings.Builder
	b.WriteString(`<div class="photo-frame" style="width:`)
	b.WriteString(strconv.Itoa(size))
	b.WriteString(`px;height:`)
	b.WriteString(strconv.Itoa(size))
	b.WriteString(`px;border-radius:`)
	b.WriteString(radius)
	b.WriteString(`;overflow:hidden;display:flex;align-items:center;justify-content:center;background:#f9fafb;flex-shrink:0">`)
	b.WriteString(`<img src="`)
	b.WriteString(template.HTMLEscapeString(p.Photo.URL))
	b.WriteString(`" alt="Profile" style="min-width:100%;min-height:100%;max-width:none;`)
	b.WriteString(string(p.Photo.Style))
	b.WriteString(`"/></div>`)
	return template.HTML(b.String())
}

// SkillsDotted joins skills with the separator classic and executive use.
func (p *page) SkillsDotted() string {
	return strings.Join(p.Skills, " • ")
}

// SkillsQuoted joins skills as a quoted list for the tech variant.
func (p *page) SkillsQuoted() string {
	quoted := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		quoted[i] = `"` + s + `"`
	}
	return strings.Join(quoted, ", ")
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func fontStack(f model.FontFamily) string {
	switch f {
	case model.FontSerif:
		return `Georgia, 'Times New Roman', serif`
	case model.FontMono:
		return `'SFMono-Regular', Menlo, Consolas, monospace`
	default:
		return `'Helvetica Neue', Helvetica, Arial, sans-serif`
	}
}

// sanitizeColor keeps the accent usable in inline CSS. The theme accepts
// any color string; anything carrying characters outside the usual color
// syntax falls back to the default accent.
func sanitizeColor(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return "#4F46E5"
	}
	for _, r := range c {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '#' || r == '(' || r == ')' || r == ',' || r == '.' || r == '%' || r == '-' || r == ' ':
		default:
			return "#4F46E5"
		}
	}
	return c
}

// websiteLabel tidies a free-form website value into a short display label
// (eTLD+1 when it parses, hostname otherwise). The raw value is kept for
// the link target.
func websiteLabel(site string) string {
	if site == "" {
		return ""
	}
	candidate := site
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return site
	}
	host := parsed.Hostname()
	if host == "" {
		return site
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
