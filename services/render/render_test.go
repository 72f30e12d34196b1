package render

import (
	"context"
	"testing"

	blockRepo "pagecraft/database/repository/block"
	pageRepo "pagecraft/database/repository/page"
	"pagecraft/models"
	"pagecraft/services/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(blocks ...models.Block) *Renderer {
	repo := blockRepo.NewMemoryBlockRepo()
	repo.Seed(blocks)
	return &Renderer{
		Pages:           pageRepo.NewMemoryPageRepo(),
		Blocks:          repo,
		DefaultLanguage: "pt-BR",
		Handlers:        content.ActionHandlers{HasPurchase: true},
	}
}

func heroBlock(id, parentID string, order int) models.Block {
	return models.Block{
		ID:       id,
		ParentID: parentID,
		Type:     models.BlockHero,
		Kind:     models.KindSection,
		Order:    order,
		Active:   true,
		Version:  models.VersionPublished,
		Title:    models.MultiLanguageContent{"pt-BR": "Bem-vindo", "en": "Welcome"},
		Content: []models.ContentItem{
			{
				Type:    models.ContentText,
				Order:   0,
				Variant: models.TextHeading,
				Value:   models.MultiLanguageContent{"pt-BR": "Olá", "en": "Hello"},
			},
		},
	}
}

func TestRenderParentResolvesRequestedLanguage(t *testing.T) {
	r := newTestRenderer(heroBlock("b1", "store-1", 0))

	out, err := r.RenderParent(context.Background(), "store-1", "en", false)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "Welcome", out[0].Title)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, content.RenderText, out[0].Items[0].Strategy)
	assert.Equal(t, "Hello", out[0].Items[0].Text)
}

func TestRenderParentFallsBackToDefaultLanguage(t *testing.T) {
	r := newTestRenderer(heroBlock("b1", "store-1", 0))

	out, err := r.RenderParent(context.Background(), "store-1", "fr", false)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "Bem-vindo", out[0].Title)
	assert.Equal(t, "Olá", out[0].Items[0].Text)
}

func TestRenderParentHidesDraftAndInactiveBlocks(t *testing.T) {
	visible := heroBlock("b1", "store-1", 1)
	draft := heroBlock("b2", "store-1", 0)
	draft.Version = models.VersionDraft
	inactive := heroBlock("b3", "store-1", 2)
	inactive.Active = false

	r := newTestRenderer(visible, draft, inactive)

	out, err := r.RenderParent(context.Background(), "store-1", "en", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b1", out[0].ID)
}

func TestRenderActionsResolveToOutcomes(t *testing.T) {
	block := models.Block{
		ID:       "cta-1",
		ParentID: "store-1",
		Type:     models.BlockCTA,
		Active:   true,
		Version:  models.VersionPublished,
		Content: []models.ContentItem{{
			Type:  models.ContentActions,
			Order: 0,
			Primary: &models.ActionDescriptor{
				Action: models.ActionBuy,
				Price:  &models.PriceDescriptor{Amount: 99.9, Currency: "BRL"},
			},
			Secondary: &models.ActionDescriptor{
				Action: models.ActionLink,
				URL:    "https://example.com/more",
			},
		}},
	}
	r := newTestRenderer(block)

	out, err := r.RenderParent(context.Background(), "store-1", "pt-BR", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Items, 1)

	item := out[0].Items[0]
	require.NotNil(t, item.Primary)
	assert.Equal(t, content.OutcomePurchase, item.Primary.Kind)
	assert.Equal(t, "cta-1", item.Primary.ProductRef)

	require.NotNil(t, item.Secondary)
	assert.Equal(t, content.OutcomeNavigate, item.Secondary.Kind)
	assert.Equal(t, "https://example.com/more", item.Secondary.URL)
}

func TestRenderUnknownContentTypeBecomesPlaceholder(t *testing.T) {
	block := heroBlock("b1", "store-1", 0)
	block.Content = append(block.Content, models.ContentItem{Type: "hologram", Order: 1})
	r := newTestRenderer(block)

	out, err := r.RenderParent(context.Background(), "store-1", "en", false)
	require.NoError(t, err)
	require.Len(t, out[0].Items, 2)
	assert.Equal(t, content.RenderPlaceholder, out[0].Items[1].Strategy)
}

func TestRenderPageUsesEmbeddedBlocks(t *testing.T) {
	r := newTestRenderer()
	page := &models.Page{
		ID:     "page-1",
		Blocks: []models.Block{heroBlock("b1", "", 0)},
	}

	out, err := r.RenderPage(context.Background(), page, "en", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Welcome", out[0].Title)
}

func TestRenderPageFallsBackToBlockCollection(t *testing.T) {
	stored := heroBlock("b1", "", 0)
	stored.PageID = "page-1"
	r := newTestRenderer(stored)

	out, err := r.RenderPage(context.Background(), &models.Page{ID: "page-1"}, "en", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b1", out[0].ID)
}

func TestRenderedItemsKeepContentOrder(t *testing.T) {
	block := heroBlock("b1", "store-1", 0)
	block.Content = []models.ContentItem{
		{Type: models.ContentText, Order: 2, Value: models.MultiLanguageContent{"en": "third"}},
		{Type: models.ContentText, Order: 0, Value: models.MultiLanguageContent{"en": "first"}},
		{Type: models.ContentText, Order: 1, Value: models.MultiLanguageContent{"en": "second"}},
	}
	r := newTestRenderer(block)

	out, err := r.RenderParent(context.Background(), "store-1", "en", false)
	require.NoError(t, err)
	items := out[0].Items
	assert.Equal(t, "first", items[0].Text)
	assert.Equal(t, "second", items[1].Text)
	assert.Equal(t, "third", items[2].Text)
}
