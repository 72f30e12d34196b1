package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":         "hello-world",
		"Promoção de Verão":   "promocao-de-verao",
		"  Spaces   Galore  ": "spaces-galore",
		"Price: R$ 49,90!":    "price-r-49-90",
		"ALL CAPS":            "all-caps",
		"already-a-slug":      "already-a-slug",
		"":                    "page",
		"!!!":                 "page",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
