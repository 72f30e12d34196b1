// Package content holds the pure block-content logic: multilingual value
// resolution, content ordering, block visibility and action resolution.
// Nothing in this package performs I/O or panics on malformed data.
package content

import (
	"sort"

	"pagecraft/models"
)

// Resolve picks the best display string for the requested language. The
// fallback chain is: requested language, then the default language, then the
// first available entry, then the empty string. A miss is not an error.
//
// Go maps have no insertion order, so "first available entry" is the entry
// at the smallest key in lexicographic order, which keeps the chain
// deterministic across processes.
func Resolve(m models.MultiLanguageContent, language, defaultLanguage string) string {
	if len(m) == 0 {
		return ""
	}
	if language != "" {
		if v, ok := m[language]; ok {
			return v
		}
	}
	if defaultLanguage != "" {
		if v, ok := m[defaultLanguage]; ok {
			return v
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return m[keys[0]]
}

// ResolveDefault resolves against the package default language.
func ResolveDefault(m models.MultiLanguageContent, language string) string {
	return Resolve(m, language, models.DefaultLanguage)
}

// Update returns a copy of m with the entry for language replaced by value.
// The input map is never mutated.
func Update(m models.MultiLanguageContent, value, language string) models.MultiLanguageContent {
	out := make(models.MultiLanguageContent, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[language] = value
	return out
}

// Create returns a single-entry map holding value under language.
func Create(value, language string) models.MultiLanguageContent {
	return models.MultiLanguageContent{language: value}
}
