package handlers

import (
	"errors"
	"net/http"

	blockRepo "pagecraft/database/repository/block"
	"pagecraft/models"
	"pagecraft/services/checkout"
	"pagecraft/services/content"
	"pagecraft/services/page"
	"pagecraft/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler turns a click on a buy action into a payment intent.
type CheckoutHandler struct {
	BlockService page.BlockService
	Checkout     *checkout.DefaultCheckoutService
	Handlers     content.ActionHandlers
}

// CheckoutIntentHandler handles POST /checkout/intent. The client identifies
// the action by block, item order and slot; the server re-resolves the
// action from persisted content so prices cannot be tampered with.
func (h *CheckoutHandler) CheckoutIntentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		BlockID   string `json:"blockId" binding:"required"`
		ItemOrder int    `json:"itemOrder"`
		Slot      string `json:"slot"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blk, err := h.BlockService.GetBlock(c.Request.Context(), req.BlockID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		logger.Error("Failed to fetch block for checkout", zap.String("blockId", req.BlockID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	action := findAction(blk, req.ItemOrder, req.Slot)
	if action == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No action at that position"})
		return
	}

	outcome := content.ResolveAction(*action, blk.ID, h.Handlers)
	if outcome.Kind != content.OutcomePurchase {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Action does not resolve to a purchase", "kind": outcome.Kind})
		return
	}

	intent, err := h.Checkout.CreateIntent(outcome)
	if err != nil {
		logger.Error("Failed to create checkout intent",
			zap.String("blockId", req.BlockID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, intent)
}

func findAction(blk *models.Block, itemOrder int, slot string) *models.ActionDescriptor {
	for _, item := range blk.Content {
		if item.Type != models.ContentActions || item.Order != itemOrder {
			continue
		}
		if slot == "secondary" {
			return item.Secondary
		}
		return item.Primary
	}
	return nil
}
