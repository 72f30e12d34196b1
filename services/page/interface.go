// Package page orchestrates editorial operations on pages and blocks:
// creation defaults, slugs, sanitizing, publication transitions, reordering
// and render-cache invalidation.
package page

import (
	"context"
	"time"

	"pagecraft/models"
)

// PageService manages page aggregates.
type PageService interface {
	CreatePage(ctx context.Context, page models.Page) (*models.Page, error)
	GetPage(ctx context.Context, idOrSlug string, preview bool) (*models.Page, error)
	ListPages(ctx context.Context) ([]models.Page, error)
	UpdatePage(ctx context.Context, page models.Page) (*models.Page, error)
	DeletePage(ctx context.Context, id string) error
	PublishPage(ctx context.Context, id string) (*models.Page, error)
	ArchivePage(ctx context.Context, id string) (*models.Page, error)
	SchedulePublish(ctx context.Context, id string, at time.Time) error
}

// BlockService manages blocks in blocks-only mode.
type BlockService interface {
	CreateBlock(ctx context.Context, block models.Block) (*models.Block, error)
	GetBlock(ctx context.Context, id string) (*models.Block, error)
	ListByParent(ctx context.Context, parentID string) ([]models.Block, int64, error)
	UpdateBlock(ctx context.Context, block models.Block) (*models.Block, error)
	DeleteBlock(ctx context.Context, id string) error
	PublishBlock(ctx context.Context, id string) (*models.Block, error)
	Reorder(ctx context.Context, parentID string, orderedIDs []string, expectedRevision int64) error
}

// Invalidator drops cached render output for a scope (a page ID or a
// blocks-only parent ID). The render cache implements it directly; the
// worker task client implements it by deferring the drop to the worker.
type Invalidator interface {
	Invalidate(ctx context.Context, scope string) error
}

// PublishScheduler enqueues a deferred publish for a page. The background
// worker package implements it.
type PublishScheduler interface {
	SchedulePublish(pageID string, at time.Time) error
}
