package pageRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"pagecraft/models"

	"github.com/google/uuid"
)

// MemoryPageRepo is an in-memory PageRepository for preloaded data and the
// repository contract tests.
type MemoryPageRepo struct {
	mu    sync.RWMutex
	pages map[string]models.Page
}

func NewMemoryPageRepo() *MemoryPageRepo {
	return &MemoryPageRepo{pages: make(map[string]models.Page)}
}

// Seed loads pages without touching timestamps or revisions.
func (r *MemoryPageRepo) Seed(pages []models.Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pages {
		r.pages[p.ID] = p
	}
}

func (r *MemoryPageRepo) Upsert(ctx context.Context, page models.Page) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if existing, ok := r.pages[page.ID]; ok {
		page.CreatedAt = existing.CreatedAt
		page.Revision = existing.Revision + 1
	} else {
		page.CreatedAt = now
		page.Revision = 1
	}
	page.UpdatedAt = now
	r.pages[page.ID] = page
	return page.ID, nil
}

func (r *MemoryPageRepo) GetByID(ctx context.Context, id string) (*models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	page, ok := r.pages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &page, nil
}

func (r *MemoryPageRepo) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pages {
		if p.Slug == slug {
			page := p
			return &page, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryPageRepo) List(ctx context.Context) ([]models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Page, 0, len(r.pages))
	for _, p := range r.pages {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryPageRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[id]; !ok {
		return ErrNotFound
	}
	delete(r.pages, id)
	return nil
}
