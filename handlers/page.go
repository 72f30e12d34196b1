package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	pageRepo "pagecraft/database/repository/page"
	"pagecraft/middleware"
	"pagecraft/models"
	"pagecraft/services/page"
	"pagecraft/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler wires the page service to HTTP.
type PageHandler struct {
	PageService page.PageService
}

// CreatePageHandler handles POST /pages.
func (h *PageHandler) CreatePageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.Page
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create page request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.PageService.CreatePage(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPageHandler handles GET /pages/:idOrSlug. Draft and archived pages are
// only returned in preview mode.
func (h *PageHandler) GetPageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idOrSlug := c.Param("idOrSlug")
	preview := middleware.IsPreview(c)

	p, err := h.PageService.GetPage(c.Request.Context(), idOrSlug, preview)
	if err != nil {
		if errors.Is(err, pageRepo.ErrNotFound) || errors.Is(err, page.ErrNotVisible) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		logger.Error("Failed to fetch page", zap.String("idOrSlug", idOrSlug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPagesHandler handles GET /pages.
func (h *PageHandler) ListPagesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	pages, err := h.PageService.ListPages(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list pages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pages)
}

// UpdatePageHandler handles PUT /pages/:id.
func (h *PageHandler) UpdatePageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req models.Page
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update page request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")
	updated, err := h.PageService.UpdatePage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, pageRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		logger.Error("Failed to update page", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePageHandler handles DELETE /pages/:id.
func (h *PageHandler) DeletePageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.PageService.DeletePage(c.Request.Context(), id); err != nil {
		if errors.Is(err, pageRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		logger.Error("Failed to delete page", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}

// PublishPageHandler handles POST /pages/:id/publish.
func (h *PageHandler) PublishPageHandler(c *gin.Context) {
	h.transition(c, h.PageService.PublishPage, "publish")
}

// ArchivePageHandler handles POST /pages/:id/archive.
func (h *PageHandler) ArchivePageHandler(c *gin.Context) {
	h.transition(c, h.PageService.ArchivePage, "archive")
}

// SchedulePublishHandler handles POST /pages/:id/schedule.
func (h *PageHandler) SchedulePublishHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req struct {
		PublishAt time.Time `json:"publishAt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.PublishAt.After(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publishAt must be in the future"})
		return
	}
	if err := h.PageService.SchedulePublish(c.Request.Context(), id, req.PublishAt); err != nil {
		if errors.Is(err, pageRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		logger.Error("Failed to schedule publish", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Publish scheduled", "publishAt": req.PublishAt})
}

func (h *PageHandler) transition(c *gin.Context, op func(ctx context.Context, id string) (*models.Page, error), name string) {
	logger := utils.GetLogger()
	id := c.Param("id")
	p, err := op(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pageRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		logger.Error("Page transition failed",
			zap.String("id", id), zap.String("transition", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
