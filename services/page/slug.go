package page

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	pageRepo "pagecraft/database/repository/page"

	"github.com/mozillazg/go-unidecode"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug: transliterate to ASCII,
// lowercase, collapse everything else into single hyphens.
func Slugify(title string) string {
	s := unidecode.Unidecode(title)
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "page"
	}
	return s
}

// uniqueSlug suffixes the base slug with a counter until no other page
// holds it.
func (s *DefaultPageService) uniqueSlug(ctx context.Context, base, selfID string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		existing, err := s.Repo.GetBySlug(ctx, slug)
		if errors.Is(err, pageRepo.ErrNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", fmt.Errorf("slug lookup failed: %w", err)
		}
		if existing.ID == selfID {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
		if i > 100 {
			return "", fmt.Errorf("could not find a free slug for %q", base)
		}
	}
}
