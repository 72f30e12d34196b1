package models

import "time"

// PageStatus gates public visibility of a whole page.
type PageStatus string

const (
	PageDraft     PageStatus = "draft"
	PagePublished PageStatus = "published"
	PageArchived  PageStatus = "archived"
)

// SEOSettings carries per-page search metadata.
type SEOSettings struct {
	Title       MultiLanguageContent `bson:"title,omitempty" json:"title,omitempty"`
	Description MultiLanguageContent `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    []string             `bson:"keywords,omitempty" json:"keywords,omitempty"`
	OGImage     string               `bson:"ogImage,omitempty" json:"ogImage,omitempty"`
}

// PageSettings groups publication state, SEO and presentation defaults.
type PageSettings struct {
	SEO      *SEOSettings `bson:"seo,omitempty" json:"seo,omitempty"`
	Theme    string       `bson:"theme,omitempty" json:"theme,omitempty"`
	Language string       `bson:"language,omitempty" json:"language,omitempty"`
	Status   PageStatus   `bson:"status" json:"status"`
}

// Page groups an ordered list of blocks plus publication status and SEO
// settings. Blocks is the denormalised list used in full-page mode; in
// blocks-only mode blocks live in their own collection keyed by parentId.
type Page struct {
	ID          string               `bson:"id" json:"id"`
	Title       MultiLanguageContent `bson:"title" json:"title"`
	Slug        string               `bson:"slug" json:"slug"`
	Description MultiLanguageContent `bson:"description,omitempty" json:"description,omitempty"`
	Blocks      []Block              `bson:"blocks" json:"blocks"`
	Settings    PageSettings         `bson:"settings" json:"settings"`
	PublishAt   *time.Time           `bson:"publish_at,omitempty" json:"publish_at,omitempty"`
	Revision    int64                `bson:"revision" json:"revision"`
	CreatedAt   time.Time            `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time            `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Visible reports whether the page is publicly visible. The preview flag is
// a request-time override used by authorised preview flows.
func (p Page) Visible(preview bool) bool {
	if preview {
		return true
	}
	return p.Settings.Status == PagePublished
}
