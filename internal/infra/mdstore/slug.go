package mdstore

import (
	"strings"
	"unicode"
)

const maxSlugLen = 60

// slugify produces a safe filename component. Letters outside ASCII are kept
// so titles in other scripts still yield a readable name.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if r := []rune(out); len(r) > maxSlugLen {
		out = strings.TrimRight(string(r[:maxSlugLen]), "-")
	}
	return out
}
