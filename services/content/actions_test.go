package content

import (
	"testing"

	"pagecraft/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveActionPurchase(t *testing.T) {
	action := models.ActionDescriptor{
		Action: models.ActionBuy,
		URL:    "https://example.com/fallback",
		Price:  &models.PriceDescriptor{Amount: 49.9, Currency: "BRL"},
	}
	handlers := ActionHandlers{HasPurchase: true}

	outcome := ResolveAction(action, "block-123", handlers)

	assert.Equal(t, OutcomePurchase, outcome.Kind)
	assert.Equal(t, "block-123", outcome.ProductRef)
	assert.Equal(t, 49.9, outcome.Price.Amount)
	assert.Empty(t, outcome.URL)
}

func TestResolveActionBuyWithoutHandlerFallsBackToURL(t *testing.T) {
	action := models.ActionDescriptor{
		Action: models.ActionBuy,
		URL:    "https://example.com/buy",
		Price:  &models.PriceDescriptor{Amount: 49.9, Currency: "BRL"},
	}

	outcome := ResolveAction(action, "block-123", ActionHandlers{})

	assert.Equal(t, OutcomeNavigate, outcome.Kind)
	assert.Equal(t, "https://example.com/buy", outcome.URL)
	assert.Nil(t, outcome.Price)
}

func TestResolveActionBuyWithoutPriceFallsBackToURL(t *testing.T) {
	action := models.ActionDescriptor{
		Action: models.ActionBuy,
		URL:    "https://example.com/buy",
	}

	outcome := ResolveAction(action, "block-123", ActionHandlers{HasPurchase: true})

	assert.Equal(t, OutcomeNavigate, outcome.Kind)
}

func TestResolveActionNavigate(t *testing.T) {
	action := models.ActionDescriptor{
		Action: models.ActionLink,
		URL:    "https://example.com/docs",
	}

	outcome := ResolveAction(action, "block-123", ActionHandlers{HasPurchase: true})

	assert.Equal(t, OutcomeNavigate, outcome.Kind)
	assert.Equal(t, "https://example.com/docs", outcome.URL)
}

func TestResolveActionNoop(t *testing.T) {
	outcome := ResolveAction(models.ActionDescriptor{Action: models.ActionContact}, "block-123", ActionHandlers{HasPurchase: true})

	assert.Equal(t, OutcomeNoop, outcome.Kind)
	assert.Empty(t, outcome.URL)
	assert.Empty(t, outcome.ProductRef)
}
