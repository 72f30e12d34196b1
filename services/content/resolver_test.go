package content

import (
	"testing"

	"pagecraft/models"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrefersRequestedLanguage(t *testing.T) {
	m := models.MultiLanguageContent{
		"pt-BR": "Olá",
		"en":    "Hello",
		"es":    "Hola",
	}
	assert.Equal(t, "Hello", Resolve(m, "en", "pt-BR"))
	assert.Equal(t, "Hola", Resolve(m, "es", "pt-BR"))
}

func TestResolveFallsBackToDefault(t *testing.T) {
	m := models.MultiLanguageContent{
		"pt-BR": "Olá",
		"en":    "Hello",
	}
	assert.Equal(t, "Olá", Resolve(m, "fr", "pt-BR"))
	assert.Equal(t, "Olá", Resolve(m, "", "pt-BR"))
}

func TestResolveFallsBackToFirstEntry(t *testing.T) {
	m := models.MultiLanguageContent{
		"fr": "Bonjour",
		"de": "Hallo",
	}
	// Neither the requested nor the default language exists; the entry at
	// the smallest key wins deterministically.
	assert.Equal(t, "Hallo", Resolve(m, "en", "pt-BR"))
}

func TestResolveEmptyMap(t *testing.T) {
	assert.Equal(t, "", Resolve(nil, "en", "pt-BR"))
	assert.Equal(t, "", Resolve(models.MultiLanguageContent{}, "en", "pt-BR"))
}

func TestResolveDefaultUsesPackageDefault(t *testing.T) {
	m := models.MultiLanguageContent{"pt-BR": "Olá", "en": "Hello"}
	assert.Equal(t, "Olá", ResolveDefault(m, "fr"))
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	original := models.MultiLanguageContent{"en": "Hello"}
	updated := Update(original, "Bonjour", "fr")

	assert.Equal(t, models.MultiLanguageContent{"en": "Hello"}, original)
	assert.Equal(t, "Bonjour", updated["fr"])
	assert.Equal(t, "Hello", updated["en"])
}

func TestUpdateReplacesExistingEntry(t *testing.T) {
	original := models.MultiLanguageContent{"en": "Hello"}
	updated := Update(original, "Hi", "en")

	assert.Equal(t, "Hello", original["en"])
	assert.Equal(t, "Hi", updated["en"])
	assert.Len(t, updated, 1)
}

func TestCreate(t *testing.T) {
	m := Create("Hello", "en")
	assert.Equal(t, models.MultiLanguageContent{"en": "Hello"}, m)
}
