package page

import (
	"context"
	"errors"
	"fmt"
	"time"

	pageRepo "pagecraft/database/repository/page"
	"pagecraft/models"
	"pagecraft/services/content"
	"pagecraft/utils"

	"go.uber.org/zap"
)

// ErrNotVisible is returned when a page exists but is not published and the
// request carries no preview authorisation.
var ErrNotVisible = errors.New("page is not published")

// DefaultPageService is the standard PageService implementation.
type DefaultPageService struct {
	Repo      pageRepo.PageRepository
	Cache     Invalidator
	Scheduler PublishScheduler
}

// CreatePage assigns an ID and a unique slug and persists the page as a
// draft.
func (s *DefaultPageService) CreatePage(ctx context.Context, page models.Page) (*models.Page, error) {
	logger := utils.GetLogger()

	if page.Slug == "" {
		title := content.ResolveDefault(page.Title, "")
		page.Slug = Slugify(title)
	}
	slug, err := s.uniqueSlug(ctx, page.Slug, page.ID)
	if err != nil {
		return nil, err
	}
	page.Slug = slug

	if page.Settings.Status == "" {
		page.Settings.Status = models.PageDraft
	}
	if page.Blocks == nil {
		page.Blocks = []models.Block{}
	}
	sanitizePage(&page)

	id, err := s.Repo.Upsert(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.ID = id
	logger.Info("page created", zap.String("pageID", id), zap.String("slug", page.Slug))

	if page.PublishAt != nil && s.Scheduler != nil {
		if err := s.Scheduler.SchedulePublish(id, *page.PublishAt); err != nil {
			logger.Warn("failed to schedule publish", zap.String("pageID", id), zap.Error(err))
		}
	}
	return s.Repo.GetByID(ctx, id)
}

// GetPage loads a page by ID, falling back to slug lookup. Unpublished
// pages are only returned when preview is set.
func (s *DefaultPageService) GetPage(ctx context.Context, idOrSlug string, preview bool) (*models.Page, error) {
	page, err := s.Repo.GetByID(ctx, idOrSlug)
	if errors.Is(err, pageRepo.ErrNotFound) {
		page, err = s.Repo.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}
	if !page.Visible(preview) {
		return nil, ErrNotVisible
	}
	return page, nil
}

func (s *DefaultPageService) ListPages(ctx context.Context) ([]models.Page, error) {
	return s.Repo.List(ctx)
}

// UpdatePage persists an edited page and drops its cached render output.
func (s *DefaultPageService) UpdatePage(ctx context.Context, page models.Page) (*models.Page, error) {
	if page.ID == "" {
		return nil, fmt.Errorf("page ID is required for update")
	}
	existing, err := s.Repo.GetByID(ctx, page.ID)
	if err != nil {
		return nil, err
	}
	if page.Slug != "" && page.Slug != existing.Slug {
		slug, err := s.uniqueSlug(ctx, Slugify(page.Slug), page.ID)
		if err != nil {
			return nil, err
		}
		page.Slug = slug
	} else {
		page.Slug = existing.Slug
	}
	sanitizePage(&page)

	if _, err := s.Repo.Upsert(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	s.invalidate(ctx, page.ID)
	return s.Repo.GetByID(ctx, page.ID)
}

func (s *DefaultPageService) DeletePage(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// PublishPage flips the page status to published.
func (s *DefaultPageService) PublishPage(ctx context.Context, id string) (*models.Page, error) {
	return s.setStatus(ctx, id, models.PagePublished)
}

// ArchivePage flips the page status to archived, hiding it from end users.
func (s *DefaultPageService) ArchivePage(ctx context.Context, id string) (*models.Page, error) {
	return s.setStatus(ctx, id, models.PageArchived)
}

func (s *DefaultPageService) setStatus(ctx context.Context, id string, status models.PageStatus) (*models.Page, error) {
	page, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	page.Settings.Status = status
	if status == models.PagePublished {
		page.PublishAt = nil
	}
	if _, err := s.Repo.Upsert(ctx, *page); err != nil {
		return nil, fmt.Errorf("failed to set page status: %w", err)
	}
	s.invalidate(ctx, id)
	return s.Repo.GetByID(ctx, id)
}

// SchedulePublish records the publish time and enqueues the deferred
// publish task.
func (s *DefaultPageService) SchedulePublish(ctx context.Context, id string, at time.Time) error {
	page, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	page.PublishAt = &at
	if _, err := s.Repo.Upsert(ctx, *page); err != nil {
		return fmt.Errorf("failed to store publish schedule: %w", err)
	}
	if s.Scheduler == nil {
		return fmt.Errorf("no publish scheduler configured")
	}
	return s.Scheduler.SchedulePublish(id, at)
}

func (s *DefaultPageService) invalidate(ctx context.Context, scope string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, scope); err != nil {
		utils.GetLogger().Warn("render cache invalidation failed",
			zap.String("scope", scope), zap.Error(err))
	}
}
