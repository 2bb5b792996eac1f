package validators

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugAllowed = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	slugStrip   = regexp.MustCompile(`[^a-z0-9]+`)

	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

func IsSlugValid(slug string) bool {
	return len(slug) >= 3 && len(slug) <= 100 && slugAllowed.MatchString(slug)
}

// Slugify derives an URL slug from a display name or event title.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}

	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
