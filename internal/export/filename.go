package export

import "strings"

const filenameSuffix = "_CV-Genius.pdf"

// Filename derives the download name from the resume owner's full name,
// falling back to "Resume" when none is set. Characters that are unsafe in
// a filename are replaced with underscores.
func Filename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "Resume"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + filenameSuffix
}
