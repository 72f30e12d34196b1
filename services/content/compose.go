package content

import (
	"sort"

	"pagecraft/models"
)

// OrderedContent returns the block's content items sorted ascending by
// order. The sort is stable: items sharing an order value keep their
// original relative position, which matters for hand-authored data.
func OrderedContent(block models.Block) []models.ContentItem {
	items := make([]models.ContentItem, len(block.Content))
	copy(items, block.Content)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	return items
}

// VisibleBlocks filters to blocks that are active and published, then
// stable-sorts ascending by order. This is the single visibility predicate
// shared by the full-page and blocks-only render paths.
func VisibleBlocks(blocks []models.Block) []models.Block {
	out := make([]models.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Renderable() {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
