package page

import (
	"context"
	"fmt"

	blockRepo "pagecraft/database/repository/block"
	"pagecraft/models"
	"pagecraft/utils"

	"go.uber.org/zap"
)

// DefaultBlockService is the standard BlockService implementation for
// blocks-only mode.
type DefaultBlockService struct {
	Repo  blockRepo.BlockRepository
	Cache Invalidator
}

// CreateBlock applies creation defaults: the block is appended at the end
// of its parent's list (order = current block count), starts as an active
// draft, and has its html content sanitized.
func (s *DefaultBlockService) CreateBlock(ctx context.Context, block models.Block) (*models.Block, error) {
	if block.ParentID == "" && block.PageID == "" {
		return nil, fmt.Errorf("block requires a parentId or pageId")
	}
	// Siblings live under the parent in blocks-only mode and under the
	// page otherwise; counting the wrong scope would hand out orders from
	// another page's list.
	var count int64
	var err error
	if block.ParentID != "" {
		count, err = s.Repo.CountByParent(ctx, block.ParentID)
	} else {
		count, err = s.Repo.CountByPage(ctx, block.PageID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to count sibling blocks: %w", err)
	}
	block.Order = int(count)
	block.Active = true
	block.Version = models.VersionDraft
	if block.Kind == "" {
		block.Kind = models.KindSection
	}
	if block.Content == nil {
		block.Content = []models.ContentItem{}
	}
	sanitizeBlock(&block)

	id, err := s.Repo.Upsert(ctx, block)
	if err != nil {
		return nil, fmt.Errorf("failed to create block: %w", err)
	}
	utils.GetLogger().Info("block created",
		zap.String("blockID", id), zap.String("parentID", block.ParentID))
	s.invalidate(ctx, block)
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBlockService) GetBlock(ctx context.Context, id string) (*models.Block, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListByParent returns the parent's blocks in stored order together with
// the list revision token callers must echo back on reorder.
func (s *DefaultBlockService) ListByParent(ctx context.Context, parentID string) ([]models.Block, int64, error) {
	blocks, err := s.Repo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, 0, err
	}
	return blocks, blockRepo.ListRevision(blocks), nil
}

// UpdateBlock persists an edited block, keeping its stored order so that
// content edits cannot shuffle the list.
func (s *DefaultBlockService) UpdateBlock(ctx context.Context, block models.Block) (*models.Block, error) {
	if block.ID == "" {
		return nil, fmt.Errorf("block ID is required for update")
	}
	existing, err := s.Repo.GetByID(ctx, block.ID)
	if err != nil {
		return nil, err
	}
	block.Order = existing.Order
	block.ParentID = existing.ParentID
	block.PageID = existing.PageID
	sanitizeBlock(&block)

	if _, err := s.Repo.Upsert(ctx, block); err != nil {
		return nil, fmt.Errorf("failed to update block: %w", err)
	}
	s.invalidate(ctx, *existing)
	return s.Repo.GetByID(ctx, block.ID)
}

func (s *DefaultBlockService) DeleteBlock(ctx context.Context, id string) error {
	block, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, *block)
	return nil
}

// PublishBlock flips a draft block to published.
func (s *DefaultBlockService) PublishBlock(ctx context.Context, id string) (*models.Block, error) {
	block, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	block.Version = models.VersionPublished
	if _, err := s.Repo.Upsert(ctx, *block); err != nil {
		return nil, fmt.Errorf("failed to publish block: %w", err)
	}
	s.invalidate(ctx, *block)
	return s.Repo.GetByID(ctx, id)
}

// Reorder delegates to the repository's atomic reorder. expectedRevision is
// the token returned by ListByParent; a conflict surfaces as
// blockRepo.ErrReorderConflict.
func (s *DefaultBlockService) Reorder(ctx context.Context, parentID string, orderedIDs []string, expectedRevision int64) error {
	if err := s.Repo.Reorder(ctx, parentID, orderedIDs, expectedRevision); err != nil {
		return err
	}
	s.invalidate(ctx, models.Block{ParentID: parentID})
	return nil
}

func (s *DefaultBlockService) invalidate(ctx context.Context, block models.Block) {
	if s.Cache == nil {
		return
	}
	scope := block.ParentID
	if scope == "" {
		scope = block.PageID
	}
	if scope == "" {
		return
	}
	if err := s.Cache.Invalidate(ctx, scope); err != nil {
		utils.GetLogger().Warn("render cache invalidation failed",
			zap.String("scope", scope), zap.Error(err))
	}
}
