package handlers

import (
	"errors"
	"net/http"

	"pagecraft/config"
	pageRepo "pagecraft/database/repository/page"
	"pagecraft/middleware"
	"pagecraft/services/language"
	"pagecraft/services/page"
	"pagecraft/services/render"
	"pagecraft/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// languageCookie persists a visitor's language choice between requests.
const languageCookie = "preferred_language"

// RenderHandler serves language-resolved render output for renderer clients.
type RenderHandler struct {
	PageService page.PageService
	Renderer    *render.Renderer
}

// RenderPageHandler handles GET /render/pages/:idOrSlug.
func (h *RenderHandler) RenderPageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	idOrSlug := c.Param("idOrSlug")
	preview := middleware.IsPreview(c)
	lang := negotiateLanguage(c)

	p, err := h.PageService.GetPage(c.Request.Context(), idOrSlug, preview)
	if err != nil {
		if errors.Is(err, pageRepo.ErrNotFound) || errors.Is(err, page.ErrNotVisible) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		logger.Error("Failed to fetch page for render", zap.String("idOrSlug", idOrSlug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	blocks, err := h.Renderer.RenderPage(c.Request.Context(), p, lang, preview)
	if err != nil {
		logger.Error("Failed to render page", zap.String("id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rememberLanguage(c, lang)
	c.JSON(http.StatusOK, gin.H{
		"page":     gin.H{"id": p.ID, "slug": p.Slug, "settings": p.Settings},
		"language": lang,
		"blocks":   blocks,
	})
}

// RenderParentHandler handles GET /render/parents/:parentId. Blocks-only
// mode: no page aggregate, just the ordered visible blocks of one parent.
func (h *RenderHandler) RenderParentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	parentID := c.Param("parentId")
	preview := middleware.IsPreview(c)
	lang := negotiateLanguage(c)

	blocks, err := h.Renderer.RenderParent(c.Request.Context(), parentID, lang, preview)
	if err != nil {
		logger.Error("Failed to render parent", zap.String("parentId", parentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rememberLanguage(c, lang)
	c.JSON(http.StatusOK, gin.H{
		"parentId": parentID,
		"language": lang,
		"blocks":   blocks,
	})
}

func negotiateLanguage(c *gin.Context) string {
	persisted, _ := c.Cookie(languageCookie)
	prefs := language.Preferences{
		QueryParam:   c.Query("lang"),
		Explicit:     c.GetHeader("X-Content-Language"),
		Persisted:    persisted,
		AcceptHeader: c.GetHeader("Accept-Language"),
	}
	return language.Negotiate(prefs, config.Languages(), config.AppConfig.DefaultLanguage)
}

func rememberLanguage(c *gin.Context, lang string) {
	c.SetCookie(languageCookie, lang, 60*60*24*365, "/", "", false, false)
}
