package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  float64
	}{
		{"huge container caps at 1", 2000, 1},
		{"exact fit", 794 + 32, 1},
		{"narrow container shrinks", 429, 0.5},
		{"tiny container floors at 0.1", 50, 0.1},
		{"zero width floors at 0.1", 0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeScale(tt.width), 1e-9)
		})
	}
}
