// Package slug derives unique URL-safe paths from article titles.
package slug

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxLength bounds every generated slug, numeric suffix included.
const MaxLength = 100

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_]+`)
	dashRuns   = regexp.MustCompile(`-+`)
)

// Generator allocates slugs against a snapshot of the slugs already in use.
// Each allocation joins the working set, so repeated calls within one
// generation pass never collide with each other.
type Generator struct {
	used map[string]struct{}
}

func NewGenerator(existing []string) *Generator {
	used := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		used[s] = struct{}{}
	}
	return &Generator{used: used}
}

// Generate returns a slug for title that is unique within this generator's
// working set, appending -1, -2, ... on collision and re-truncating so the
// suffix never pushes the slug past MaxLength.
func (g *Generator) Generate(title string) string {
	base := slugify(title)
	if base == "" {
		base = "news"
	}

	candidate := base
	for n := 1; ; n++ {
		if _, taken := g.used[candidate]; !taken {
			break
		}
		suffix := "-" + strconv.Itoa(n)
		trimmed := base
		if len(trimmed)+len(suffix) > MaxLength {
			trimmed = strings.TrimRight(trimmed[:MaxLength-len(suffix)], "-")
		}
		candidate = trimmed + suffix
	}

	g.used[candidate] = struct{}{}
	return candidate
}

func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonWord.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}
