// Package render turns persisted blocks into language-resolved render
// instructions for renderer clients.
package render

import (
	"context"

	blockRepo "pagecraft/database/repository/block"
	pageRepo "pagecraft/database/repository/page"
	"pagecraft/models"
	"pagecraft/services/content"
	"pagecraft/utils"

	"go.uber.org/zap"
)

// RenderedItem is one content item with its rendering strategy and the
// strings resolved for the negotiated language.
type RenderedItem struct {
	Strategy  content.RenderStrategy `json:"strategy"`
	Order     int                    `json:"order"`
	Text      string                 `json:"text,omitempty"`
	Primary   *content.ActionOutcome `json:"primary,omitempty"`
	Secondary *content.ActionOutcome `json:"secondary,omitempty"`
	Item      models.ContentItem     `json:"item"`
}

// RenderedBlock is one visible block with resolved heading strings and its
// ordered content items.
type RenderedBlock struct {
	ID          string              `json:"id"`
	Type        models.BlockType    `json:"type"`
	Kind        models.BlockKind    `json:"kind"`
	Title       string              `json:"title"`
	Subtitle    string              `json:"subtitle,omitempty"`
	Description string              `json:"description,omitempty"`
	Layout      *models.BlockLayout `json:"layout,omitempty"`
	Theme       *models.BlockTheme  `json:"theme,omitempty"`
	Items       []RenderedItem      `json:"items"`
}

// Renderer resolves pages and blocks-only parents into render output. It is
// the single consumer of the shared visibility predicate for both paths.
type Renderer struct {
	Pages           pageRepo.PageRepository
	Blocks          blockRepo.BlockRepository
	Cache           *Cache
	DefaultLanguage string
	Handlers        content.ActionHandlers
}

// RenderParent renders the blocks of a blocks-only parent entity.
func (r *Renderer) RenderParent(ctx context.Context, parentID, language string, preview bool) ([]RenderedBlock, error) {
	if !preview && r.Cache != nil {
		if cached, ok := r.Cache.Get(ctx, parentID, language); ok {
			return cached, nil
		}
	}
	blocks, err := r.Blocks.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	out := r.renderBlocks(blocks, language)
	if !preview && r.Cache != nil {
		if err := r.Cache.Set(ctx, parentID, language, out); err != nil {
			utils.GetLogger().Warn("render cache write failed",
				zap.String("scope", parentID), zap.Error(err))
		}
	}
	return out, nil
}

// RenderPage renders a full page. The page must be published unless preview
// is set; per-block visibility gating applies in both cases.
func (r *Renderer) RenderPage(ctx context.Context, page *models.Page, language string, preview bool) ([]RenderedBlock, error) {
	if !preview && r.Cache != nil {
		if cached, ok := r.Cache.Get(ctx, page.ID, language); ok {
			return cached, nil
		}
	}
	blocks := page.Blocks
	if len(blocks) == 0 {
		// Pages may also keep their blocks in the blocks collection.
		stored, err := r.Blocks.ListByPage(ctx, page.ID)
		if err != nil {
			return nil, err
		}
		blocks = stored
	}
	out := r.renderBlocks(blocks, language)
	if !preview && r.Cache != nil {
		if err := r.Cache.Set(ctx, page.ID, language, out); err != nil {
			utils.GetLogger().Warn("render cache write failed",
				zap.String("scope", page.ID), zap.Error(err))
		}
	}
	return out, nil
}

func (r *Renderer) renderBlocks(blocks []models.Block, language string) []RenderedBlock {
	visible := content.VisibleBlocks(blocks)
	out := make([]RenderedBlock, 0, len(visible))
	for _, b := range visible {
		out = append(out, r.renderBlock(b, language))
	}
	return out
}

func (r *Renderer) renderBlock(b models.Block, language string) RenderedBlock {
	rb := RenderedBlock{
		ID:          b.ID,
		Type:        b.Type,
		Kind:        b.Kind,
		Title:       r.resolve(b.Title, language),
		Subtitle:    r.resolve(b.Subtitle, language),
		Description: r.resolve(b.Description, language),
		Layout:      b.Layout,
		Theme:       b.Theme,
		Items:       make([]RenderedItem, 0, len(b.Content)),
	}
	for _, item := range content.OrderedContent(b) {
		rb.Items = append(rb.Items, r.renderItem(b, item, language))
	}
	return rb
}

func (r *Renderer) renderItem(b models.Block, item models.ContentItem, language string) RenderedItem {
	instruction := content.InstructionFor(item)
	ri := RenderedItem{
		Strategy: instruction.Strategy,
		Order:    item.Order,
		Item:     item,
	}
	switch instruction.Strategy {
	case content.RenderText, content.RenderHTML:
		ri.Text = r.resolve(item.Value, language)
	case content.RenderActions:
		if item.Primary != nil {
			outcome := content.ResolveAction(*item.Primary, b.ID, r.Handlers)
			ri.Primary = &outcome
		}
		if item.Secondary != nil {
			outcome := content.ResolveAction(*item.Secondary, b.ID, r.Handlers)
			ri.Secondary = &outcome
		}
	case content.RenderTimer:
		ri.Text = r.resolve(item.Title, language)
	case content.RenderPlaceholder:
		// Unknown content tag: logged once here, rendered as nothing.
		utils.GetLogger().Warn("unknown content type, rendering placeholder",
			zap.String("blockID", b.ID), zap.String("type", string(item.Type)))
	}
	return ri
}

func (r *Renderer) resolve(m models.MultiLanguageContent, language string) string {
	def := r.DefaultLanguage
	if def == "" {
		def = models.DefaultLanguage
	}
	return content.Resolve(m, language, def)
}
