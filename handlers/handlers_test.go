package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pagecraft/config"
	blockRepo "pagecraft/database/repository/block"
	pageRepo "pagecraft/database/repository/page"
	"pagecraft/middleware"
	"pagecraft/models"
	"pagecraft/services/content"
	"pagecraft/services/page"
	"pagecraft/services/render"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *page.DefaultBlockService, *page.DefaultPageService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	config.AppConfig.DefaultLanguage = "pt-BR"
	config.AppConfig.AvailableLanguages = "pt-BR,en,es"
	t.Cleanup(func() { config.AppConfig = prev })

	blocksRepo := blockRepo.NewMemoryBlockRepo()
	pagesRepo := pageRepo.NewMemoryPageRepo()
	blockService := &page.DefaultBlockService{Repo: blocksRepo}
	pageService := &page.DefaultPageService{Repo: pagesRepo}
	renderer := &render.Renderer{
		Pages:           pagesRepo,
		Blocks:          blocksRepo,
		DefaultLanguage: "pt-BR",
		Handlers:        content.ActionHandlers{HasPurchase: true},
	}

	blockHandler := &BlockHandler{BlockService: blockService}
	renderHandler := &RenderHandler{PageService: pageService, Renderer: renderer}

	router := gin.New()
	router.GET("/api/parents/:parentId/blocks", blockHandler.ListBlocksHandler)
	router.PUT("/api/parents/:parentId/blocks/order", blockHandler.ReorderBlocksHandler)
	router.GET("/api/render/pages/:idOrSlug",
		middleware.PreviewMiddleware("idOrSlug"), renderHandler.RenderPageHandler)
	router.GET("/api/render/parents/:parentId",
		middleware.PreviewMiddleware("parentId"), renderHandler.RenderParentHandler)
	return router, blockService, pageService
}

func createBlocks(t *testing.T, svc *page.DefaultBlockService, parentID string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		blk, err := svc.CreateBlock(t.Context(), models.Block{
			ParentID: parentID,
			Type:     models.BlockText,
			Title:    models.MultiLanguageContent{"pt-BR": fmt.Sprintf("Bloco %d", i), "en": fmt.Sprintf("Block %d", i)},
		})
		require.NoError(t, err)
		_, err = svc.PublishBlock(t.Context(), blk.ID)
		require.NoError(t, err)
		ids = append(ids, blk.ID)
	}
	return ids
}

func TestListBlocksReturnsRevision(t *testing.T) {
	router, svc, _ := newTestRouter(t)
	createBlocks(t, svc, "store-1", 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/parents/store-1/blocks", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Blocks   []models.Block `json:"blocks"`
		Revision int64          `json:"revision"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Blocks, 2)
	assert.Positive(t, body.Revision)
}

func TestReorderEndpoint(t *testing.T) {
	router, svc, _ := newTestRouter(t)
	ids := createBlocks(t, svc, "store-1", 3)

	_, revision, err := svc.ListByParent(t.Context(), "store-1")
	require.NoError(t, err)

	payload, _ := json.Marshal(map[string]any{
		"orderedIds": []string{ids[2], ids[0], ids[1]},
		"revision":   revision,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/parents/store-1/blocks/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	after, _, err := svc.ListByParent(t.Context(), "store-1")
	require.NoError(t, err)
	assert.Equal(t, ids[2], after[0].ID)

	// Replaying the same request with the now stale revision conflicts.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/parents/store-1/blocks/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRenderPageEndpoint(t *testing.T) {
	router, blockSvc, pageSvc := newTestRouter(t)

	created, err := pageSvc.CreatePage(t.Context(), models.Page{
		Title: models.MultiLanguageContent{"pt-BR": "Loja", "en": "Store"},
	})
	require.NoError(t, err)
	_, err = pageSvc.PublishPage(t.Context(), created.ID)
	require.NoError(t, err)

	blk, err := blockSvc.CreateBlock(t.Context(), models.Block{
		PageID: created.ID,
		Type:   models.BlockText,
		Title:  models.MultiLanguageContent{"pt-BR": "Bloco", "en": "Block"},
	})
	require.NoError(t, err)
	_, err = blockSvc.PublishBlock(t.Context(), blk.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render/pages/"+created.Slug+"?lang=en", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Page struct {
			ID       string              `json:"id"`
			Slug     string              `json:"slug"`
			Settings models.PageSettings `json:"settings"`
		} `json:"page"`
		Language string                 `json:"language"`
		Blocks   []render.RenderedBlock `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, created.ID, body.Page.ID)
	assert.Equal(t, created.Slug, body.Page.Slug)
	assert.Equal(t, models.PagePublished, body.Page.Settings.Status)
	assert.Equal(t, "en", body.Language)
	require.Len(t, body.Blocks, 1)
	assert.Equal(t, "Block", body.Blocks[0].Title)
}

func TestRenderParentEndpointLanguageParam(t *testing.T) {
	router, svc, _ := newTestRouter(t)
	createBlocks(t, svc, "store-1", 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render/parents/store-1?lang=en", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Language string                 `json:"language"`
		Blocks   []render.RenderedBlock `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "en", body.Language)
	require.Len(t, body.Blocks, 1)
	assert.Equal(t, "Block 0", body.Blocks[0].Title)
}

func TestRenderParentEndpointAcceptLanguageFallback(t *testing.T) {
	router, svc, _ := newTestRouter(t)
	createBlocks(t, svc, "store-1", 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render/parents/store-1", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Language string `json:"language"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "es", body.Language)
}
