package blockRepo

import (
	"context"
	"errors"

	"pagecraft/models"
)

// ErrNotFound is returned when no block matches the given ID.
var ErrNotFound = errors.New("block not found")

// ErrReorderConflict is returned when the parent's block list changed
// between the caller reading it and the reorder write. The caller should
// reload and retry instead of silently interleaving orders.
var ErrReorderConflict = errors.New("block list changed concurrently")

// BlockRepository is the persistence gateway for blocks. Upsert assigns an
// ID when absent, sets created_at only on first persist and always
// refreshes updated_at. Reorder writes the new order values atomically.
type BlockRepository interface {
	Upsert(ctx context.Context, block models.Block) (string, error)
	GetByID(ctx context.Context, id string) (*models.Block, error)
	ListByParent(ctx context.Context, parentID string) ([]models.Block, error)
	ListByPage(ctx context.Context, pageID string) ([]models.Block, error)
	CountByParent(ctx context.Context, parentID string) (int64, error)
	CountByPage(ctx context.Context, pageID string) (int64, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, parentID string, orderedIDs []string, expectedRevision int64) error
}

// ListRevision derives the optimistic-concurrency token for a parent's
// block list: the sum of the individual block revisions. Every persisted
// mutation bumps one block's revision, so any concurrent change moves the
// sum away from the value the caller read.
func ListRevision(blocks []models.Block) int64 {
	var sum int64
	for _, b := range blocks {
		sum += b.Revision
	}
	return sum
}
