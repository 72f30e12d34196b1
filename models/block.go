package models

import "time"

// BlockType is the section taxonomy of a block. New types must be additive;
// renderers treat unrecognised values as soft-fail placeholders.
type BlockType string

const (
	BlockHero         BlockType = "hero"
	BlockFeatures     BlockType = "features"
	BlockTestimonials BlockType = "testimonials"
	BlockPricing      BlockType = "pricing"
	BlockFAQ          BlockType = "faq"
	BlockStats        BlockType = "stats"
	BlockText         BlockType = "text"
	BlockMedia        BlockType = "media"
	BlockList         BlockType = "list"
	BlockActions      BlockType = "actions"
	BlockTimer        BlockType = "timer"
	BlockCTA          BlockType = "cta"
	BlockContent      BlockType = "content"
	BlockCustom       BlockType = "custom"
)

// BlockKind distinguishes full sections from embeddable components.
type BlockKind string

const (
	KindSection   BlockKind = "section"
	KindComponent BlockKind = "component"
)

// Version gates per-block visibility independently of the parent page.
type Version string

const (
	VersionDraft     Version = "draft"
	VersionPublished Version = "published"
)

// LayoutVariant arranges the block's content items.
type LayoutVariant string

const (
	LayoutStack    LayoutVariant = "stack"
	LayoutSplit    LayoutVariant = "split"
	LayoutGrid     LayoutVariant = "grid"
	LayoutCarousel LayoutVariant = "carousel"
)

// BlockLayout holds layout overrides for a block.
type BlockLayout struct {
	Variant         LayoutVariant `bson:"variant" json:"variant"`
	Container       string        `bson:"container,omitempty" json:"container,omitempty"` // boxed|fluid|none
	Columns         int           `bson:"columns,omitempty" json:"columns,omitempty"`
	GridColumns     int           `bson:"gridColumns,omitempty" json:"gridColumns,omitempty"`
	TemplateColumns string        `bson:"templateColumns,omitempty" json:"templateColumns,omitempty"`
	Align           string        `bson:"align" json:"align"` // start|center|end
	Spacing         string        `bson:"spacing,omitempty" json:"spacing,omitempty"`
}

// BlockTheme holds per-block style token overrides, opaque to this model.
type BlockTheme struct {
	Background string `bson:"background,omitempty" json:"background,omitempty"`
	Text       string `bson:"text,omitempty" json:"text,omitempty"`
	Accent     string `bson:"accent,omitempty" json:"accent,omitempty"`
	Border     string `bson:"border,omitempty" json:"border,omitempty"`
	Shadow     string `bson:"shadow,omitempty" json:"shadow,omitempty"`
}

// Block is a titled, themed, orderable section containing an ordered list of
// content items. ParentID scopes blocks-only mode; PageID scopes blocks
// stored under a page. A block is renderable to end users only when
// Active && Version == published.
type Block struct {
	ID          string               `bson:"id" json:"id"`
	Type        BlockType            `bson:"type" json:"type"`
	Kind        BlockKind            `bson:"kind" json:"kind"`
	Title       MultiLanguageContent `bson:"title" json:"title"`
	Subtitle    MultiLanguageContent `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description MultiLanguageContent `bson:"description,omitempty" json:"description,omitempty"`
	Content     []ContentItem        `bson:"content" json:"content"`
	Layout      *BlockLayout         `bson:"layout,omitempty" json:"layout,omitempty"`
	Theme       *BlockTheme          `bson:"theme,omitempty" json:"theme,omitempty"`
	Order       int                  `bson:"order" json:"order"`
	Active      bool                 `bson:"active" json:"active"`
	Version     Version              `bson:"version" json:"version"`
	ParentID    string               `bson:"parentId,omitempty" json:"parentId,omitempty"`
	PageID      string               `bson:"pageId,omitempty" json:"pageId,omitempty"`
	Revision    int64                `bson:"revision" json:"revision"`
	CreatedAt   time.Time            `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time            `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Renderable reports whether the block is visible to end users.
func (b Block) Renderable() bool {
	return b.Active && b.Version == VersionPublished
}
