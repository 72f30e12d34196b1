package pageRepo

import (
	"context"
	"errors"

	"pagecraft/models"
)

// ErrNotFound is returned when no page matches the given ID or slug.
var ErrNotFound = errors.New("page not found")

// PageRepository is the persistence gateway for pages. Upsert follows the
// same timestamp bookkeeping as blocks: created_at only on first persist,
// updated_at on every write.
type PageRepository interface {
	Upsert(ctx context.Context, page models.Page) (string, error)
	GetByID(ctx context.Context, id string) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	List(ctx context.Context) ([]models.Page, error)
	Delete(ctx context.Context, id string) error
}
