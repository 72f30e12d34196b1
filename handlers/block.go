package handlers

import (
	"errors"
	"net/http"

	blockRepo "pagecraft/database/repository/block"
	"pagecraft/models"
	"pagecraft/services/editor"
	"pagecraft/services/page"
	"pagecraft/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlockHandler wires the block service to HTTP.
type BlockHandler struct {
	BlockService page.BlockService
	Autosave     *editor.Autosaver
}

// CreateBlockHandler handles POST /blocks.
func (h *BlockHandler) CreateBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.Block
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create block request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.BlockService.CreateBlock(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create block", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBlockHandler handles GET /blocks/:id.
func (h *BlockHandler) GetBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	blk, err := h.BlockService.GetBlock(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		logger.Error("Failed to fetch block", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blk)
}

// ListBlocksHandler handles GET /parents/:parentId/blocks. The response
// carries the list revision the client must echo back on reorder.
func (h *BlockHandler) ListBlocksHandler(c *gin.Context) {
	logger := utils.GetLogger()
	parentID := c.Param("parentId")
	blocks, revision, err := h.BlockService.ListByParent(c.Request.Context(), parentID)
	if err != nil {
		logger.Error("Failed to list blocks", zap.String("parentId", parentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks, "revision": revision})
}

// UpdateBlockHandler handles PUT /blocks/:id.
func (h *BlockHandler) UpdateBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.Block
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update block request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")
	updated, err := h.BlockService.UpdateBlock(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, blockRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		logger.Error("Failed to update block", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBlockHandler handles DELETE /blocks/:id.
func (h *BlockHandler) DeleteBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.BlockService.DeleteBlock(c.Request.Context(), id); err != nil {
		if errors.Is(err, blockRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		logger.Error("Failed to delete block", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block deleted"})
}

// PublishBlockHandler handles POST /blocks/:id/publish.
func (h *BlockHandler) PublishBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	blk, err := h.BlockService.PublishBlock(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		logger.Error("Failed to publish block", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blk)
}

// AutosaveBlockHandler handles PUT /blocks/:id/autosave. The edit is
// accepted immediately and persisted after the debounce window; rapid edits
// to the same block coalesce into one write.
func (h *BlockHandler) AutosaveBlockHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if h.Autosave == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Autosave is not configured"})
		return
	}

	var req models.Block
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid autosave request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Block ID is required"})
		return
	}

	h.Autosave.Submit(req)
	c.JSON(http.StatusAccepted, gin.H{"message": "Autosave queued", "pending": h.Autosave.PendingCount()})
}

// FlushAutosaveHandler handles POST /blocks/:id/autosave/flush. It persists
// a pending autosave immediately, for explicit saves and editor teardown.
func (h *BlockHandler) FlushAutosaveHandler(c *gin.Context) {
	logger := utils.GetLogger()
	if h.Autosave == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Autosave is not configured"})
		return
	}

	id := c.Param("id")
	flushed, err := h.Autosave.Flush(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to flush autosave", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flushed": flushed})
}

// ReorderBlocksHandler handles PUT /parents/:parentId/blocks/order. The
// client sends the full ID list in its new order plus the list revision it
// last read; a stale revision means someone else reordered first and yields
// 409 so the client can reload.
func (h *BlockHandler) ReorderBlocksHandler(c *gin.Context) {
	logger := utils.GetLogger()
	parentID := c.Param("parentId")

	var req struct {
		OrderedIDs []string `json:"orderedIds" binding:"required"`
		Revision   int64    `json:"revision"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reorder request", zap.String("parentId", parentID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.BlockService.Reorder(c.Request.Context(), parentID, req.OrderedIDs, req.Revision)
	if err != nil {
		if errors.Is(err, blockRepo.ErrReorderConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Block list changed since it was read. Reload and retry."})
			return
		}
		logger.Error("Failed to reorder blocks", zap.String("parentId", parentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocks reordered"})
}
