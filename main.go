package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagecraft/config"
	"pagecraft/cron"
	"pagecraft/database"
	blockRepoPkg "pagecraft/database/repository/block"
	pageRepoPkg "pagecraft/database/repository/page"
	"pagecraft/handlers"
	"pagecraft/models"
	"pagecraft/routes"
	"pagecraft/services/checkout"
	"pagecraft/services/content"
	"pagecraft/services/editor"
	"pagecraft/services/intelligence"
	"pagecraft/services/page"
	"pagecraft/services/render"
	"pagecraft/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

// scheduledPublisher adapts the page service to the worker's publish hook.
type scheduledPublisher struct {
	svc page.PageService
}

func (p scheduledPublisher) PublishPage(ctx context.Context, id string) error {
	_, err := p.svc.PublishPage(ctx, id)
	return err
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	// repositories. The driver switch is the only place that knows which
	// backend is in use.
	var pagesRepo pageRepoPkg.PageRepository
	var blocksRepo blockRepoPkg.BlockRepository
	switch config.AppConfig.DatabaseDriver {
	case "firestore":
		utils.FirebaseInit()
		pagesRepo = pageRepoPkg.NewFirestorePageRepo()
		blocksRepo = blockRepoPkg.NewFirestoreBlockRepo()
	default:
		database.InitDB()
		pagesRepo = pageRepoPkg.NewMongoPageRepo()
		blocksRepo = blockRepoPkg.NewMongoBlockRepo()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	renderCache := render.NewCache(utils.GetCacheClient(), 10*time.Minute)
	taskClient := cron.NewTaskClient()
	defer taskClient.Close()

	// services. Mutations enqueue cache invalidation; the worker below
	// applies it against the render cache.
	pageService := &page.DefaultPageService{
		Repo:      pagesRepo,
		Cache:     taskClient,
		Scheduler: taskClient,
	}
	blockService := &page.DefaultBlockService{
		Repo:  blocksRepo,
		Cache: taskClient,
	}

	actionHandlers := content.ActionHandlers{
		HasPurchase: config.AppConfig.StripeKey != "",
	}
	renderer := &render.Renderer{
		Pages:           pagesRepo,
		Blocks:          blocksRepo,
		Cache:           renderCache,
		DefaultLanguage: config.AppConfig.DefaultLanguage,
		Handlers:        actionHandlers,
	}

	autosaver := editor.NewAutosaver(
		time.Duration(config.AppConfig.AutosaveDebounceMS)*time.Millisecond,
		func(ctx context.Context, block models.Block) error {
			_, err := blockService.UpdateBlock(ctx, block)
			return err
		},
	)

	var copyService intelligence.CopyService
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		svc, err := intelligence.NewGeminiCopyService(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize copy service: %v", err)
		}
		copyService = svc
	}

	// Background worker for scheduled publishes and cache invalidation.
	cron.InitWorker(scheduledPublisher{svc: pageService}, renderCache)

	pageHandler := &handlers.PageHandler{PageService: pageService}
	blockHandler := &handlers.BlockHandler{BlockService: blockService, Autosave: autosaver}
	renderHandler := &handlers.RenderHandler{PageService: pageService, Renderer: renderer}
	checkoutHandler := &handlers.CheckoutHandler{
		BlockService: blockService,
		Checkout:     &checkout.DefaultCheckoutService{},
		Handlers:     actionHandlers,
	}
	copyHandler := &handlers.CopyHandler{Copy: copyService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Page endpoints.
		CreatePageHandler:      pageHandler.CreatePageHandler,
		GetPageHandler:         pageHandler.GetPageHandler,
		ListPagesHandler:       pageHandler.ListPagesHandler,
		UpdatePageHandler:      pageHandler.UpdatePageHandler,
		DeletePageHandler:      pageHandler.DeletePageHandler,
		PublishPageHandler:     pageHandler.PublishPageHandler,
		ArchivePageHandler:     pageHandler.ArchivePageHandler,
		SchedulePublishHandler: pageHandler.SchedulePublishHandler,

		// Block endpoints.
		CreateBlockHandler:   blockHandler.CreateBlockHandler,
		GetBlockHandler:      blockHandler.GetBlockHandler,
		ListBlocksHandler:    blockHandler.ListBlocksHandler,
		UpdateBlockHandler:   blockHandler.UpdateBlockHandler,
		DeleteBlockHandler:   blockHandler.DeleteBlockHandler,
		PublishBlockHandler:  blockHandler.PublishBlockHandler,
		ReorderBlocksHandler: blockHandler.ReorderBlocksHandler,
		AutosaveBlockHandler: blockHandler.AutosaveBlockHandler,
		FlushAutosaveHandler: blockHandler.FlushAutosaveHandler,

		// Render endpoints.
		RenderPageHandler:   renderHandler.RenderPageHandler,
		RenderParentHandler: renderHandler.RenderParentHandler,

		// Commerce endpoints.
		CheckoutIntentHandler: checkoutHandler.CheckoutIntentHandler,

		// AI endpoints.
		SuggestCopyHandler: copyHandler.SuggestCopyHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := autosaver.FlushAll(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to flush pending autosaves: %v", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
