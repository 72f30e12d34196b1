package content

import "pagecraft/models"

// RenderStrategy names the rendering strategy for one content item.
type RenderStrategy string

const (
	RenderText        RenderStrategy = "text"
	RenderMedia       RenderStrategy = "media"
	RenderList        RenderStrategy = "list"
	RenderActions     RenderStrategy = "actions"
	RenderTimer       RenderStrategy = "timer"
	RenderHTML        RenderStrategy = "html"
	RenderItemGrid    RenderStrategy = "item_grid"
	RenderPlaceholder RenderStrategy = "placeholder"
)

// RenderInstruction pairs a content item with its rendering strategy.
type RenderInstruction struct {
	Strategy RenderStrategy     `json:"strategy"`
	Item     models.ContentItem `json:"item"`
}

// InstructionFor maps a content item's tag to its rendering strategy. The
// mapping is pure and covers every known tag; unrecognised tags fail soft
// to a placeholder so that forward-compatible content does not crash older
// renderer versions.
func InstructionFor(item models.ContentItem) RenderInstruction {
	switch item.Type {
	case models.ContentText:
		return RenderInstruction{Strategy: RenderText, Item: item}
	case models.ContentMedia:
		return RenderInstruction{Strategy: RenderMedia, Item: item}
	case models.ContentList:
		return RenderInstruction{Strategy: RenderList, Item: item}
	case models.ContentActions:
		return RenderInstruction{Strategy: RenderActions, Item: item}
	case models.ContentTimer:
		return RenderInstruction{Strategy: RenderTimer, Item: item}
	case models.ContentHTML:
		return RenderInstruction{Strategy: RenderHTML, Item: item}
	case models.ContentFeatures, models.ContentStatistics,
		models.ContentDetails, models.ContentTestimonials:
		return RenderInstruction{Strategy: RenderItemGrid, Item: item}
	default:
		return RenderInstruction{Strategy: RenderPlaceholder, Item: item}
	}
}
