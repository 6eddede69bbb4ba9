package render

import (
	"fmt"
	"strconv"

	"cv-genius/internal/model"
)

// DragSensitivity converts pointer movement in screen pixels into focal
// center percentage points. 0.5 means half a point per pixel.
const DragSensitivity = 0.5

// Transform is the affine photo transform shared by the interactive crop
// editor and every template's photo frame. The same formula runs in both
// places so what the user sees while dragging is pixel-identical to what
// the templates display.
type Transform struct {
	Scale      float64
	TranslateX float64 // percent of the image's own size
	TranslateY float64
}

// Identity is the transform for an absent crop config: no zoom, no offset.
func Identity() Transform {
	return Transform{Scale: 1}
}

// ComputeTransform maps the normalized crop config to the transform.
// x,y are interpreted as offsets centered at 50, so 50 translates to 0%.
func ComputeTransform(cfg *model.PhotoConfig) Transform {
	if cfg == nil {
		return Identity()
	}
	return Transform{
		Scale:      cfg.Zoom,
		TranslateX: cfg.X - 50,
		TranslateY: cfg.Y - 50,
	}
}

// CSS renders the transform as inline style declarations. The transform
// origin is the element's own center.
func (t Transform) CSS() string {
	return fmt.Sprintf("transform:scale(%s) translate(%s%%, %s%%);transform-origin:center center",
		num(t.Scale), num(t.TranslateX), num(t.TranslateY))
}

// ApplyDrag pans the crop by a pointer delta. Offsets are deliberately not
// clamped: with zoom >= 1 the image always overfills its frame, so
// out-of-range values simply pan further.
func ApplyDrag(cfg model.PhotoConfig, dx, dy float64) model.PhotoConfig {
	cfg.X += dx * DragSensitivity
	cfg.Y += dy * DragSensitivity
	return cfg
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
