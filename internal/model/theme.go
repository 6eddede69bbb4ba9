package model

// TemplateID selects one of the fixed layout variants. The set is closed;
// anything else resolves to the modern default at render time.
type TemplateID string

const (
	TemplateModern       TemplateID = "modern"
	TemplateClassic      TemplateID = "classic"
	TemplateMinimal      TemplateID = "minimal"
	TemplateProfessional TemplateID = "professional"
	TemplateCreative     TemplateID = "creative"
	TemplateExecutive    TemplateID = "executive"
	TemplateStudent      TemplateID = "student"
	TemplateTech         TemplateID = "tech"
	TemplateCompact      TemplateID = "compact"
	TemplateBold         TemplateID = "bold"
)

// TemplateIDs lists every known variant in presentation order.
var TemplateIDs = []TemplateID{
	TemplateModern, TemplateClassic, TemplateMinimal, TemplateProfessional,
	TemplateCreative, TemplateExecutive, TemplateStudent, TemplateTech,
	TemplateCompact, TemplateBold,
}

func (t TemplateID) Valid() bool {
	for _, id := range TemplateIDs {
		if t == id {
			return true
		}
	}
	return false
}

// Normalize maps unrecognized ids to the default variant. This is a
// defensive substitution, never surfaced to the user as an error.
func (t TemplateID) Normalize() TemplateID {
	if t.Valid() {
		return t
	}
	return TemplateModern
}

// FontFamily is the primary typeface choice. Two variants (executive and
// tech) override it with a fixed typeface by design.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

var FontFamilies = []FontFamily{FontSans, FontSerif, FontMono}

func (f FontFamily) Valid() bool {
	return f == FontSans || f == FontSerif || f == FontMono
}

func (f FontFamily) Normalize() FontFamily {
	if f.Valid() {
		return f
	}
	return FontSans
}

// ResumeTheme is the template choice, accent color and typeface applied to
// a rendering. PrimaryColor accepts any color string; the renderer
// sanitizes it before embedding.
type ResumeTheme struct {
	TemplateID   TemplateID `json:"templateId"`
	PrimaryColor string     `json:"primaryColor"`
	FontFamily   FontFamily `json:"fontFamily"`
}

// DefaultTheme is the startup theme and the fallback when a design
// suggestion fails entirely.
func DefaultTheme() ResumeTheme {
	return ResumeTheme{
		TemplateID:   TemplateModern,
		PrimaryColor: "#4F46E5",
		FontFamily:   FontSans,
	}
}

// ThemeSuggestion is the partial theme produced by the design assistant.
// Fields are plain strings because the upstream model is free to return
// anything; Merge validates each one against the closed sets.
type ThemeSuggestion struct {
	TemplateID   string `json:"templateId,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	FontFamily   string `json:"fontFamily,omitempty"`
}

// Merge applies the suggestion on top of the current theme field by field.
// Invalid or missing suggested values leave the corresponding current value
// untouched; a color is accepted as long as it is a non-empty string.
func (s ThemeSuggestion) Merge(cur ResumeTheme) ResumeTheme {
	out := cur
	if id := TemplateID(s.TemplateID); id.Valid() {
		out.TemplateID = id
	}
	if s.PrimaryColor != "" {
		out.PrimaryColor = s.PrimaryColor
	}
	if f := FontFamily(s.FontFamily); f.Valid() {
		out.FontFamily = f
	}
	return out
}
