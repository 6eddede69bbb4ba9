package render

// A4 portrait geometry at the 96dpi reference resolution. The page is
// always rendered at this fixed size; the preview shrinks it with a
// display-only transform that export consumers reset to capture at 1:1.
const (
	PageWidthMM  = 210
	PageHeightMM = 297
	PageWidthPx  = 794 // 210mm at 96dpi

	// Horizontal breathing room inside the preview container so the page
	// never touches its edges.
	previewPaddingPx = 32

	minScale = 0.1
)

// ComputeScale fits the fixed-width page into the given container width.
// The result is clamped to (0.1, 1]: never enlarged on huge screens, never
// collapsed to zero on tiny ones. Callers re-invoke this on every observed
// container resize, deferred to the next paint frame; the computation
// itself never changes the container's width, so no feedback loop forms.
func ComputeScale(containerWidthPx float64) float64 {
	scale := (containerWidthPx - previewPaddingPx) / PageWidthPx
	if scale > 1 {
		return 1
	}
	if scale < minScale {
		return minScale
	}
	return scale
}
