package page

import (
	"pagecraft/models"

	"github.com/microcosm-cc/bluemonday"
)

// htmlPolicy is the sanitizer applied to hand-authored html content before
// it is persisted. UGC policy: formatting and links survive, scripts do not.
var htmlPolicy = bluemonday.UGCPolicy()

// sanitizeContent scrubs every html item of a block in place. Other content
// kinds carry structured data and need no sanitizing.
func sanitizeContent(items []models.ContentItem) {
	for i := range items {
		if items[i].Type != models.ContentHTML {
			continue
		}
		for lang, value := range items[i].Value {
			items[i].Value[lang] = htmlPolicy.Sanitize(value)
		}
	}
}

// sanitizeBlock scrubs a block's own content list.
func sanitizeBlock(b *models.Block) {
	sanitizeContent(b.Content)
}

// sanitizePage scrubs the denormalised block list of a full page.
func sanitizePage(p *models.Page) {
	for i := range p.Blocks {
		sanitizeBlock(&p.Blocks[i])
	}
}
