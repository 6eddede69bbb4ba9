package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{"plain name", "Alex Morgan", "Alex_Morgan_CV-Genius.pdf"},
		{"empty falls back", "", "Resume_CV-Genius.pdf"},
		{"whitespace falls back", "   ", "Resume_CV-Genius.pdf"},
		{"unsafe characters replaced", `Jane/Doe:"CV"`, "Jane_Doe___CV__CV-Genius.pdf"},
		{"keeps dots and dashes", "J. Doe-Smith", "J._Doe-Smith_CV-Genius.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.fullName))
		})
	}
}
