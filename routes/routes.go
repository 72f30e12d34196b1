package routes

import (
	"net/http"
	"time"

	"pagecraft/handlers"
	"pagecraft/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers editorial page endpoints.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pages")
	{
		// Public read with optional preview (token-gated inside the middleware).
		api.GET("/:idOrSlug", middleware.PreviewMiddleware("idOrSlug"), hb.GetPageHandler)

		// Mutations require an editor token.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthEditorMiddleware())
		protected.GET("", hb.ListPagesHandler)
		protected.POST("", hb.CreatePageHandler)
		protected.PUT("/:id", hb.UpdatePageHandler)
		protected.DELETE("/:id", hb.DeletePageHandler)
		protected.POST("/:id/publish", hb.PublishPageHandler)
		protected.POST("/:id/archive", hb.ArchivePageHandler)
		protected.POST("/:id/schedule", hb.SchedulePublishHandler)
	}
}

// RegisterBlockRoutes registers block endpoints for both page-attached and
// blocks-only usage.
func RegisterBlockRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/blocks")
	{
		api.Use(middleware.JWTAuthEditorMiddleware())
		api.POST("", hb.CreateBlockHandler)
		api.GET("/:id", hb.GetBlockHandler)
		api.PUT("/:id", hb.UpdateBlockHandler)
		api.DELETE("/:id", hb.DeleteBlockHandler)
		api.POST("/:id/publish", hb.PublishBlockHandler)
		api.PUT("/:id/autosave", hb.AutosaveBlockHandler)
		api.POST("/:id/autosave/flush", hb.FlushAutosaveHandler)
	}

	parents := r.Group("/api/parents")
	{
		parents.Use(middleware.JWTAuthEditorMiddleware())
		parents.GET("/:parentId/blocks", hb.ListBlocksHandler)
		parents.PUT("/:parentId/blocks/order", hb.ReorderBlocksHandler)
	}
}

// RegisterRenderRoutes registers the public render endpoints consumed by
// renderer clients.
func RegisterRenderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/render")
	{
		api.GET("/pages/:idOrSlug", middleware.PreviewMiddleware("idOrSlug"), hb.RenderPageHandler)
		api.GET("/parents/:parentId", middleware.PreviewMiddleware("parentId"), hb.RenderParentHandler)
	}
}

// RegisterCheckoutRoutes registers commerce endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.POST("/intent", hb.CheckoutIntentHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/intelligence")
	{
		api.Use(middleware.JWTAuthEditorMiddleware())
		api.POST("/copy", hb.SuggestCopyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pagecraft"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterPageRoutes(r, hb)
	RegisterBlockRoutes(r, hb)
	RegisterRenderRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
