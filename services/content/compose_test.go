package content

import (
	"testing"

	"pagecraft/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderedContentSortsByOrder(t *testing.T) {
	block := models.Block{
		Content: []models.ContentItem{
			{Type: models.ContentText, Order: 2, Variant: models.TextParagraph},
			{Type: models.ContentText, Order: 0, Variant: models.TextHeading},
			{Type: models.ContentMedia, Order: 1},
		},
	}

	ordered := OrderedContent(block)

	assert.Equal(t, models.TextHeading, ordered[0].Variant)
	assert.Equal(t, models.ContentMedia, ordered[1].Type)
	assert.Equal(t, models.TextParagraph, ordered[2].Variant)
}

func TestOrderedContentIsStableForEqualOrders(t *testing.T) {
	block := models.Block{
		Content: []models.ContentItem{
			{Type: models.ContentText, Order: 0, Variant: models.TextHeading},
			{Type: models.ContentText, Order: 0, Variant: models.TextSubtitle},
			{Type: models.ContentText, Order: 0, Variant: models.TextParagraph},
		},
	}

	ordered := OrderedContent(block)

	assert.Equal(t, models.TextHeading, ordered[0].Variant)
	assert.Equal(t, models.TextSubtitle, ordered[1].Variant)
	assert.Equal(t, models.TextParagraph, ordered[2].Variant)
}

func TestOrderedContentDoesNotMutateBlock(t *testing.T) {
	block := models.Block{
		Content: []models.ContentItem{
			{Type: models.ContentText, Order: 1},
			{Type: models.ContentText, Order: 0},
		},
	}

	_ = OrderedContent(block)

	assert.Equal(t, 1, block.Content[0].Order)
	assert.Equal(t, 0, block.Content[1].Order)
}

func TestOrderedContentIsIdempotent(t *testing.T) {
	block := models.Block{
		Content: []models.ContentItem{
			{Type: models.ContentText, Order: 3},
			{Type: models.ContentText, Order: 1},
			{Type: models.ContentText, Order: 2},
		},
	}

	once := OrderedContent(block)
	twice := OrderedContent(models.Block{Content: once})

	assert.Equal(t, once, twice)
}

func TestVisibleBlocksFiltersAndSorts(t *testing.T) {
	blocks := []models.Block{
		{ID: "b1", Order: 2, Active: true, Version: models.VersionPublished},
		{ID: "b2", Order: 0, Active: true, Version: models.VersionDraft},
		{ID: "b3", Order: 1, Active: true, Version: models.VersionPublished},
		{ID: "b4", Order: 3, Active: false, Version: models.VersionPublished},
	}

	visible := VisibleBlocks(blocks)

	assert.Len(t, visible, 2)
	assert.Equal(t, "b3", visible[0].ID)
	assert.Equal(t, "b1", visible[1].ID)
}

func TestVisibleBlocksEmptyInput(t *testing.T) {
	assert.Empty(t, VisibleBlocks(nil))
	assert.Empty(t, VisibleBlocks([]models.Block{}))
}
