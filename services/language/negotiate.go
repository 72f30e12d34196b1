// Package language selects the display language for a request.
package language

import (
	"strings"

	"golang.org/x/text/language"
)

// Preferences collects the language signals of one request, strongest first:
// URL parameter, explicit configuration, persisted preference, and the
// Accept-Language header.
type Preferences struct {
	QueryParam   string
	Explicit     string
	Persisted    string
	AcceptHeader string
}

// Negotiate picks the language to render with. Direct signals (query,
// explicit, persisted) are taken verbatim since tags are free-form; the
// Accept-Language header is matched against the configured available set.
// When nothing applies, the default language wins.
func Negotiate(p Preferences, available []string, defaultLanguage string) string {
	if tag := strings.TrimSpace(p.QueryParam); tag != "" {
		return tag
	}
	if tag := strings.TrimSpace(p.Explicit); tag != "" {
		return tag
	}
	if tag := strings.TrimSpace(p.Persisted); tag != "" {
		return tag
	}
	if p.AcceptHeader != "" {
		if tag := matchAccept(p.AcceptHeader, available); tag != "" {
			return tag
		}
	}
	return defaultLanguage
}

func matchAccept(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	supported := make([]language.Tag, 0, len(available))
	for _, tag := range available {
		t, err := language.Parse(tag)
		if err != nil {
			continue
		}
		supported = append(supported, t)
	}
	if len(supported) == 0 {
		return ""
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return ""
	}

	matcher := language.NewMatcher(supported)
	_, index, conf := matcher.Match(desired...)
	if conf == language.No {
		return ""
	}
	// Return the configured tag string, not the matcher's canonicalised tag,
	// so stored content keys keep matching.
	count := 0
	for _, tag := range available {
		if _, err := language.Parse(tag); err != nil {
			continue
		}
		if count == index {
			return tag
		}
		count++
	}
	return ""
}
