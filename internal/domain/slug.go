package domain

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a URL-safe slug from a title: lowercase, trimmed,
// characters outside [a-z0-9-] removed, whitespace runs collapsed to single
// dashes, no leading or trailing dashes. Pure and deterministic; an empty or
// all-invalid title yields "" and callers must reject it.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
