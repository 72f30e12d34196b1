package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	CreatePageHandler      gin.HandlerFunc
	GetPageHandler         gin.HandlerFunc
	ListPagesHandler       gin.HandlerFunc
	UpdatePageHandler      gin.HandlerFunc
	DeletePageHandler      gin.HandlerFunc
	PublishPageHandler     gin.HandlerFunc
	ArchivePageHandler     gin.HandlerFunc
	SchedulePublishHandler gin.HandlerFunc

	// Block endpoints
	CreateBlockHandler   gin.HandlerFunc
	GetBlockHandler      gin.HandlerFunc
	ListBlocksHandler    gin.HandlerFunc
	UpdateBlockHandler   gin.HandlerFunc
	DeleteBlockHandler   gin.HandlerFunc
	PublishBlockHandler  gin.HandlerFunc
	ReorderBlocksHandler gin.HandlerFunc
	AutosaveBlockHandler gin.HandlerFunc
	FlushAutosaveHandler gin.HandlerFunc

	// Render endpoints
	RenderPageHandler   gin.HandlerFunc
	RenderParentHandler gin.HandlerFunc

	// Commerce endpoints
	CheckoutIntentHandler gin.HandlerFunc

	// AI endpoints
	SuggestCopyHandler gin.HandlerFunc
}
