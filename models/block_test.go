package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockRenderable(t *testing.T) {
	assert.True(t, Block{Active: true, Version: VersionPublished}.Renderable())
	assert.False(t, Block{Active: true, Version: VersionDraft}.Renderable())
	assert.False(t, Block{Active: false, Version: VersionPublished}.Renderable())
	assert.False(t, Block{}.Renderable())
}

func TestPageVisible(t *testing.T) {
	published := Page{Settings: PageSettings{Status: PagePublished}}
	draft := Page{Settings: PageSettings{Status: PageDraft}}
	archived := Page{Settings: PageSettings{Status: PageArchived}}

	assert.True(t, published.Visible(false))
	assert.False(t, draft.Visible(false))
	assert.False(t, archived.Visible(false))

	// Preview overrides status.
	assert.True(t, draft.Visible(true))
	assert.True(t, archived.Visible(true))
}

func TestPriceDiscountValid(t *testing.T) {
	assert.True(t, PriceDescriptor{Amount: 50, Original: 100}.DiscountValid())
	assert.True(t, PriceDescriptor{Amount: 100, Original: 100}.DiscountValid())
	assert.False(t, PriceDescriptor{Amount: 100, Original: 50}.DiscountValid())
	assert.False(t, PriceDescriptor{Amount: 100}.DiscountValid())
}

func TestContentItemUnknownTypeSurvivesDecoding(t *testing.T) {
	raw := `{"type":"carousel_3d","order":5}`
	var item ContentItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, ContentType("carousel_3d"), item.Type)
	assert.Equal(t, 5, item.Order)
}
