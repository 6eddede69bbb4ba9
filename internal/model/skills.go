package model

import "strings"

// The canonical edit surface for skills is a single comma-separated string.
// ParseSkills reconstructs the ordered list from it: segments are trimmed
// and empty ones dropped, so a rendered skill set never shows blank
// entries.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinSkills produces the canonical comma-separated form. Parsing the
// result yields the same list, so one normalization pass is idempotent.
func JoinSkills(skills []string) string {
	return strings.Join(FilterSkills(skills), ", ")
}

// FilterSkills drops blank entries from an already-split list. Templates
// call this so no variant re-implements the omission rule.
func FilterSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
