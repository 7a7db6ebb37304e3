package validate

import (
	"regexp"
	"strconv"
	"strings"

	"missingfit/internal/domain"
)

var (
	reQ       = regexp.MustCompile(`^[\p{L}0-9 _'&,.-]{1,50}$`)
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reChannel = regexp.MustCompile(`^(whatsapp|call|shortlist)$`)
)

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if r := []rune(s); len(r) > 50 {
		s = string(r[:50])
	}
	return s, reQ.MatchString(s)
}

// Reveal parses a ?show= count. Garbage and non-positive values give 0 so
// the pager falls back to its page size.
func Reveal(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// ID validates an item identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Category accepts "" (meaning all) and any ID-shaped slug. Unknown slugs
// are valid and simply match no items.
func Category(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return domain.CategoryAll, true
	}
	return s, reID.MatchString(s)
}

func Channel(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reChannel.MatchString(s)
}
