package handlers

import (
	"net/http"

	"pagecraft/services/intelligence"
	"pagecraft/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CopyHandler exposes AI copy suggestions to the editor.
type CopyHandler struct {
	Copy intelligence.CopyService
}

// SuggestCopyHandler handles POST /intelligence/copy.
func (h *CopyHandler) SuggestCopyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if h.Copy == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Copy suggestions are not configured"})
		return
	}

	var req intelligence.CopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid copy suggestion request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Languages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "languages must not be empty"})
		return
	}

	suggestion, err := h.Copy.SuggestCopy(c.Request.Context(), req)
	if err != nil {
		logger.Error("Copy suggestion failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
