package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-genius/internal/model"
)

func TestComputeTransform(t *testing.T) {
	tests := []struct {
		name string
		cfg  *model.PhotoConfig
		want Transform
	}{
		{
			name: "nil config is identity",
			cfg:  nil,
			want: Transform{Scale: 1, TranslateX: 0, TranslateY: 0},
		},
		{
			name: "default config is identity",
			cfg:  &model.PhotoConfig{X: 50, Y: 50, Zoom: 1},
			want: Transform{Scale: 1, TranslateX: 0, TranslateY: 0},
		},
		{
			name: "offset and zoom",
			cfg:  &model.PhotoConfig{X: 70, Y: 30, Zoom: 2},
			want: Transform{Scale: 2, TranslateX: 20, TranslateY: -20},
		},
		{
			name: "zoom only",
			cfg:  &model.PhotoConfig{X: 50, Y: 50, Zoom: 3.5},
			want: Transform{Scale: 3.5, TranslateX: 0, TranslateY: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTransform(tt.cfg))
		})
	}
}

func TestTransformCSS(t *testing.T) {
	css := ComputeTransform(&model.PhotoConfig{X: 70, Y: 30, Zoom: 2}).CSS()
	assert.Equal(t, "transform:scale(2) translate(20%, -20%);transform-origin:center center", css)

	css = Identity().CSS()
	assert.Equal(t, "transform:scale(1) translate(0%, 0%);transform-origin:center center", css)
}

func TestApplyDrag(t *testing.T) {
	cfg := model.DefaultPhotoConfig()

	got := ApplyDrag(cfg, 10, -4)
	assert.Equal(t, model.PhotoConfig{X: 55, Y: 48, Zoom: 1}, got)

	// Drags are not clamped; the frame clips out-of-range crops visually.
	got = ApplyDrag(got, 1000, 1000)
	assert.Equal(t, 555.0, got.X)
	assert.Equal(t, 548.0, got.Y)

	// Input is untouched.
	assert.Equal(t, model.DefaultPhotoConfig(), cfg)
}
