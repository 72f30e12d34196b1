package blockRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"pagecraft/models"

	"github.com/google/uuid"
)

// MemoryBlockRepo is an in-memory BlockRepository. It backs the
// preloaded-data render mode (SSR callers handing over blocks they already
// fetched) and the repository contract tests.
type MemoryBlockRepo struct {
	mu     sync.RWMutex
	blocks map[string]models.Block
}

func NewMemoryBlockRepo() *MemoryBlockRepo {
	return &MemoryBlockRepo{blocks: make(map[string]models.Block)}
}

// Seed loads blocks without touching timestamps or revisions, for
// preloaded data.
func (r *MemoryBlockRepo) Seed(blocks []models.Block) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range blocks {
		r.blocks[b.ID] = b
	}
}

func (r *MemoryBlockRepo) Upsert(ctx context.Context, block models.Block) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if existing, ok := r.blocks[block.ID]; ok {
		block.CreatedAt = existing.CreatedAt
		block.Revision = existing.Revision + 1
	} else {
		block.CreatedAt = now
		block.Revision = 1
	}
	block.UpdatedAt = now
	r.blocks[block.ID] = block
	return block.ID, nil
}

func (r *MemoryBlockRepo) GetByID(ctx context.Context, id string) (*models.Block, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	block, ok := r.blocks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &block, nil
}

func (r *MemoryBlockRepo) ListByParent(ctx context.Context, parentID string) ([]models.Block, error) {
	return r.list(func(b models.Block) bool { return b.ParentID == parentID }), nil
}

func (r *MemoryBlockRepo) ListByPage(ctx context.Context, pageID string) ([]models.Block, error) {
	return r.list(func(b models.Block) bool { return b.PageID == pageID }), nil
}

func (r *MemoryBlockRepo) list(match func(models.Block) bool) []models.Block {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Block
	for _, b := range r.blocks {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *MemoryBlockRepo) CountByParent(ctx context.Context, parentID string) (int64, error) {
	blocks, _ := r.ListByParent(ctx, parentID)
	return int64(len(blocks)), nil
}

func (r *MemoryBlockRepo) CountByPage(ctx context.Context, pageID string) (int64, error) {
	blocks, _ := r.ListByPage(ctx, pageID)
	return int64(len(blocks)), nil
}

func (r *MemoryBlockRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blocks[id]; !ok {
		return ErrNotFound
	}
	delete(r.blocks, id)
	return nil
}

func (r *MemoryBlockRepo) Reorder(ctx context.Context, parentID string, orderedIDs []string, expectedRevision int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var current []models.Block
	for _, b := range r.blocks {
		if b.ParentID == parentID {
			current = append(current, b)
		}
	}
	if ListRevision(current) != expectedRevision {
		return ErrReorderConflict
	}
	if len(orderedIDs) != len(current) {
		return ErrReorderConflict
	}
	stored := make(map[string]bool, len(current))
	for _, b := range current {
		stored[b.ID] = true
	}
	for _, id := range orderedIDs {
		if !stored[id] {
			return ErrReorderConflict
		}
	}

	now := time.Now().UTC()
	for index, id := range orderedIDs {
		b := r.blocks[id]
		b.Order = index
		b.UpdatedAt = now
		b.Revision++
		r.blocks[id] = b
	}
	return nil
}
